package srs

import (
	"math"
	"sort"
	"time"
)

// Category は優先度ティアの分類です。
type Category int

const (
	CategoryNew Category = iota + 1
	CategoryDue
	CategoryStarred
	CategoryErrorProne
	CategoryScheduled
	CategoryMastered
)

func (c Category) String() string {
	switch c {
	case CategoryNew:
		return "new"
	case CategoryDue:
		return "due"
	case CategoryStarred:
		return "starred"
	case CategoryErrorProne:
		return "error_prone"
	case CategoryScheduled:
		return "scheduled"
	case CategoryMastered:
		return "mastered"
	default:
		return "unknown"
	}
}

// Label は問題生成側に渡す分類ラベルです。
type Label string

const (
	LabelNew       Label = "NEW"
	LabelOverdue   Label = "OVERDUE"
	LabelDifficult Label = "DIFFICULT"
	LabelReview    Label = "REVIEW"
)

// Label はカテゴリに対応するラベルを返します。
func (c Category) Label() Label {
	switch c {
	case CategoryNew:
		return LabelNew
	case CategoryDue:
		return LabelOverdue
	case CategoryStarred, CategoryErrorProne:
		return LabelDifficult
	default:
		return LabelReview
	}
}

const (
	tierNew        = 1.0
	tierDueBase    = 2.0
	tierStarred    = 8.0
	tierErrorProne = 10.0
	tierScheduled  = 15.0
	tierMastered   = 20.0

	errorProneAccuracy = 0.6
)

// Classify は項目のティア(小さいほど先に出す)とカテゴリを返します。上から順に最初に一致したものを採用します。
func Classify(item Item, now time.Time) (float64, Category) {
	switch {
	case item.TimesSeen == 0:
		return tierNew, CategoryNew
	case !item.NextReviewAt.After(now) && !item.IsMastered:
		return tierDueBase + (MaxQuality - item.MasteryLevel), CategoryDue
	case item.DifficultyRating == StarredDifficulty:
		return tierStarred, CategoryStarred
	case item.Accuracy() < errorProneAccuracy:
		return tierErrorProne, CategoryErrorProne
	case item.IsMastered:
		return tierMastered, CategoryMastered
	default:
		return tierScheduled, CategoryScheduled
	}
}

// DaysOverdue は期限超過日数(切り捨て、0 以上)を返します。
func DaysOverdue(item Item, now time.Time) int {
	d := math.Floor(now.Sub(item.NextReviewAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return int(d)
}

// Candidate は復習履歴と任意の静的データ(単語本文など)の組です。
type Candidate[T any] struct {
	Item Item
	Meta T
}

// Ranked は並べ替え済みの候補です。
type Ranked[T any] struct {
	Candidate[T]
	Tier        float64
	Category    Category
	Label       Label
	DaysOverdue int
}

// RankForReview は候補をティア昇順、同ティア内は期限超過日数の降順に並べ、先頭 limit 件を返します。
// 完全に同順位のものは入力順を保ちます。入力スライスは変更しません。
func RankForReview[T any](items []Candidate[T], limit int, now time.Time) []Ranked[T] {
	if limit <= 0 || len(items) == 0 {
		return []Ranked[T]{}
	}

	ranked := make([]Ranked[T], 0, len(items))
	for _, c := range items {
		tier, cat := Classify(c.Item, now)
		ranked = append(ranked, Ranked[T]{
			Candidate:   c,
			Tier:        tier,
			Category:    cat,
			Label:       cat.Label(),
			DaysOverdue: DaysOverdue(c.Item, now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Tier != ranked[j].Tier {
			return ranked[i].Tier < ranked[j].Tier
		}
		return ranked[i].DaysOverdue > ranked[j].DaysOverdue
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Summary はカテゴリ別の件数です。
type Summary struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Due        int `json:"due"`
	Starred    int `json:"starred"`
	ErrorProne int `json:"error_prone"`
	Scheduled  int `json:"scheduled"`
	Mastered   int `json:"mastered"`
}

// Pending は今すぐ出題すべき件数 (新規 + 期限到来) です。
func (s Summary) Pending() int {
	return s.New + s.Due
}

// Summarize は項目をカテゴリごとに数えます。
func Summarize(items []Item, now time.Time) Summary {
	var s Summary
	for _, it := range items {
		s.Total++
		_, cat := Classify(it, now)
		switch cat {
		case CategoryNew:
			s.New++
		case CategoryDue:
			s.Due++
		case CategoryStarred:
			s.Starred++
		case CategoryErrorProne:
			s.ErrorProne++
		case CategoryScheduled:
			s.Scheduled++
		case CategoryMastered:
			s.Mastered++
		}
	}
	return s
}
