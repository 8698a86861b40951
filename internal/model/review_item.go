package model

import (
	"time"

	"ssat_prep/internal/srs"

	"github.com/google/uuid"
)

// ReviewItem は学習者×単語ごとの復習履歴です。初回の操作時に作られます。
type ReviewItem struct {
	ReviewItemID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"review_item_id"`
	LearnerID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_word,unique" json:"-"`
	WordID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_word,unique" json:"word_id"`
	TimesSeen        int        `gorm:"not null" json:"times_seen"`
	TimesCorrect     int        `gorm:"not null" json:"times_correct"`
	IntervalDays     float64    `gorm:"not null" json:"interval_days"`
	EaseFactor       float64    `gorm:"not null" json:"ease_factor"`
	MasteryLevel     float64    `gorm:"not null" json:"mastery_level"`
	IsMastered       bool       `gorm:"not null" json:"is_mastered"`
	DifficultyRating int        `gorm:"not null" json:"difficulty_rating"`
	NextReviewAt     time.Time  `gorm:"not null;index" json:"next_review_at"`
	LastSeenAt       *time.Time `json:"last_seen_at"`
	Version          int        `gorm:"not null" json:"-"` // 楽観ロック用
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (ReviewItem) TableName() string {
	return "review_items"
}

// NewReviewItem は未復習状態の履歴を作ります。
func NewReviewItem(learnerID, wordID uuid.UUID, now time.Time) *ReviewItem {
	r := &ReviewItem{
		ReviewItemID: uuid.New(),
		LearnerID:    learnerID,
		WordID:       wordID,
	}
	r.SetState(srs.NewItem(wordID.String(), now))
	return r
}

// State はスケジューラ用の値に変換します。
func (r *ReviewItem) State() srs.Item {
	var lastSeen *time.Time
	if r.LastSeenAt != nil {
		t := *r.LastSeenAt
		lastSeen = &t
	}
	return srs.Item{
		ItemID:           r.WordID.String(),
		TimesSeen:        r.TimesSeen,
		TimesCorrect:     r.TimesCorrect,
		IntervalDays:     r.IntervalDays,
		EaseFactor:       r.EaseFactor,
		MasteryLevel:     r.MasteryLevel,
		IsMastered:       r.IsMastered,
		DifficultyRating: r.DifficultyRating,
		NextReviewAt:     r.NextReviewAt,
		LastSeenAt:       lastSeen,
	}
}

// SetState はスケジューラの計算結果を書き戻します。ID とバージョンは変えません。
func (r *ReviewItem) SetState(it srs.Item) {
	r.TimesSeen = it.TimesSeen
	r.TimesCorrect = it.TimesCorrect
	r.IntervalDays = it.IntervalDays
	r.EaseFactor = it.EaseFactor
	r.MasteryLevel = it.MasteryLevel
	r.IsMastered = it.IsMastered
	r.DifficultyRating = it.DifficultyRating
	r.NextReviewAt = it.NextReviewAt
	r.LastSeenAt = it.LastSeenAt
}

// WordWithReview は単語と(存在すれば)その復習履歴の組です。
type WordWithReview struct {
	Word       Word
	ReviewItem *ReviewItem
}

// State は履歴が無ければ未復習のデフォルト値を返します。
func (w WordWithReview) State(now time.Time) srs.Item {
	if w.ReviewItem == nil {
		return srs.NewItem(w.Word.WordID.String(), now)
	}
	return w.ReviewItem.State()
}
