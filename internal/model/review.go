// internal/model/review.go
package model

import (
	"time"

	"ssat_prep/internal/srs"

	"github.com/google/uuid"
)

// SubmitReviewRequest は復習結果送信リクエストのDTO
// quality(0-5) か is_correct のどちらかを指定します。両方ある場合は quality を優先します。
type SubmitReviewRequest struct {
	Quality          *int  `json:"quality" validate:"omitempty,min=0,max=5"`
	IsCorrect        *bool `json:"is_correct"`
	DifficultyRating *int  `json:"difficulty_rating" validate:"omitempty,min=1,max=5"`
}

// ResolveQuality はリクエストから評価値を決めます。どちらも無ければ false。
func (r *SubmitReviewRequest) ResolveQuality() (int, bool) {
	if r.Quality != nil {
		return *r.Quality, true
	}
	if r.IsCorrect != nil {
		return srs.QualityFromCorrect(*r.IsCorrect), true
	}
	return 0, false
}

// ReviewStateResponse は更新後の復習状態
type ReviewStateResponse struct {
	WordID           uuid.UUID  `json:"word_id"`
	TimesSeen        int        `json:"times_seen"`
	TimesCorrect     int        `json:"times_correct"`
	IntervalDays     float64    `json:"interval_days"`
	EaseFactor       float64    `json:"ease_factor"`
	MasteryLevel     float64    `json:"mastery_level"`
	IsMastered       bool       `json:"is_mastered"`
	DifficultyRating int        `json:"difficulty_rating"`
	NextReviewAt     time.Time  `json:"next_review_at"`
	LastSeenAt       *time.Time `json:"last_seen_at,omitempty"`
}

func NewReviewStateResponse(wordID uuid.UUID, it srs.Item) *ReviewStateResponse {
	return &ReviewStateResponse{
		WordID:           wordID,
		TimesSeen:        it.TimesSeen,
		TimesCorrect:     it.TimesCorrect,
		IntervalDays:     it.IntervalDays,
		EaseFactor:       it.EaseFactor,
		MasteryLevel:     it.MasteryLevel,
		IsMastered:       it.IsMastered,
		DifficultyRating: it.DifficultyRating,
		NextReviewAt:     it.NextReviewAt,
		LastSeenAt:       it.LastSeenAt,
	}
}

// ReviewQueueItem は復習キューの1件 (出題順)
type ReviewQueueItem struct {
	WordID          uuid.UUID            `json:"word_id"`
	Term            string               `json:"term"`
	Definition      string               `json:"definition"`
	PartOfSpeech    string               `json:"part_of_speech,omitempty"`
	ExampleSentence string               `json:"example_sentence,omitempty"`
	Label           srs.Label            `json:"label"`
	Category        string               `json:"category"`
	Tier            float64              `json:"tier"`
	DaysOverdue     int                  `json:"days_overdue"`
	State           *ReviewStateResponse `json:"state"`
}

// FocusWord は問題生成に渡す単語
type FocusWord struct {
	WordID     uuid.UUID `json:"word_id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	Label      srs.Label `json:"label"`
}

// VocabularyFocusResponse はラベルごとに分けた出題候補です。Words は優先度順。
type VocabularyFocusResponse struct {
	Words   []FocusWord               `json:"words"`
	ByLabel map[srs.Label][]FocusWord `json:"by_label"`
}

// ReviewSummaryResponse はカテゴリ別の件数
type ReviewSummaryResponse struct {
	LearnerID uuid.UUID `json:"learner_id"`
	srs.Summary
	Pending int `json:"pending"`
}
