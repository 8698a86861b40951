// Package srs は語彙カードの間隔反復スケジューリングを行う純粋関数群です。
// I/O を持たず、現在時刻は必ず呼び出し側から渡します。
package srs

import (
	"errors"
	"time"
)

const (
	DefaultEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	InitialIntervalDays = 1.0
	DefaultDifficulty   = 3
	StarredDifficulty   = 5
	MinDifficulty       = 1
	MaxMasteryLevel     = 4.0
	MinQuality          = 0
	MaxQuality          = 5
	PassingQuality      = 3

	MasteredIntervalDays = 30.0
	MasteredEaseFactor   = 2.8
)

var (
	ErrInvalidQuality    = errors.New("srs: invalid quality score")
	ErrInvalidInterval   = errors.New("srs: invalid interval")
	ErrInvalidEaseFactor = errors.New("srs: invalid ease factor")
	ErrInvalidDifficulty = errors.New("srs: invalid difficulty rating")
)

// Item は学習者1人と語彙1件の組に対する復習履歴です。
type Item struct {
	ItemID           string
	TimesSeen        int
	TimesCorrect     int
	IntervalDays     float64
	EaseFactor       float64
	MasteryLevel     float64
	IsMastered       bool
	DifficultyRating int
	NextReviewAt     time.Time
	LastSeenAt       *time.Time
}

// NewItem は一度も復習されていない項目のデフォルト値を返します。
func NewItem(id string, now time.Time) Item {
	return Item{
		ItemID:           id,
		IntervalDays:     InitialIntervalDays,
		EaseFactor:       DefaultEaseFactor,
		DifficultyRating: DefaultDifficulty,
		NextReviewAt:     now,
	}
}

// Accuracy は正答率を返します。未復習なら 0。
func (it Item) Accuracy() float64 {
	if it.TimesSeen == 0 {
		return 0
	}
	return float64(it.TimesCorrect) / float64(it.TimesSeen)
}

// clone は LastSeenAt のポインタを共有しないコピーを返します。
func (it Item) clone() Item {
	out := it
	if it.LastSeenAt != nil {
		t := *it.LastSeenAt
		out.LastSeenAt = &t
	}
	return out
}

// addDays は小数の日数をミリ秒精度で加算します。
func addDays(now time.Time, days float64) time.Time {
	ms := days * float64(24*time.Hour/time.Millisecond)
	return now.Add(time.Duration(ms) * time.Millisecond)
}
