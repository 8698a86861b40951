package srs

import (
	"fmt"
	"math"
	"time"
)

// NextReview は ComputeNextReview の結果です。
type NextReview struct {
	Interval   float64
	EaseFactor float64
	ReviewAt   time.Time
}

// ComputeNextReview は現在の易しさ係数・間隔と今回の評価(0-5)から次回の復習予定を計算します。
//
// 不正解(quality < 3)なら間隔は 1 日に戻り、係数は変えません。
// 正解なら 1 → 6 → 15 → round(interval * ease) と伸び、係数は SM-2 の式で更新して 1.3 を下限とします。
// 間隔の計算には更新前の係数を使います。係数が 1.3 未満の入力はエラーです。
func ComputeNextReview(easeFactor, intervalDays float64, quality int, now time.Time) (NextReview, error) {
	if err := validateQuality(quality); err != nil {
		return NextReview{}, err
	}
	if math.IsNaN(intervalDays) || math.IsInf(intervalDays, 0) || intervalDays < InitialIntervalDays {
		return NextReview{}, fmt.Errorf("%w: %v", ErrInvalidInterval, intervalDays)
	}
	if math.IsNaN(easeFactor) || math.IsInf(easeFactor, 0) || easeFactor < MinEaseFactor {
		return NextReview{}, fmt.Errorf("%w: %v", ErrInvalidEaseFactor, easeFactor)
	}

	if quality < PassingQuality {
		return NextReview{
			Interval:   InitialIntervalDays,
			EaseFactor: easeFactor,
			ReviewAt:   addDays(now, InitialIntervalDays),
		}, nil
	}

	var interval float64
	switch {
	case intervalDays == 1:
		interval = 6
	case intervalDays <= 6:
		interval = 15
	default:
		interval = math.Round(intervalDays * easeFactor)
	}

	miss := float64(MaxQuality - quality)
	ease := easeFactor + (0.1 - miss*(0.08+miss*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	return NextReview{
		Interval:   interval,
		EaseFactor: ease,
		ReviewAt:   addDays(now, interval),
	}, nil
}

// QualityFromCorrect は正誤フラグを評価値に変換します (正解 5 / 不正解 1)。
func QualityFromCorrect(correct bool) int {
	if correct {
		return MaxQuality
	}
	return 1
}

func validateQuality(quality int) error {
	if quality < MinQuality || quality > MaxQuality {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidQuality, quality, MinQuality, MaxQuality)
	}
	return nil
}

func validateDifficulty(d int) error {
	if d < MinDifficulty || d > StarredDifficulty {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidDifficulty, d, MinDifficulty, StarredDifficulty)
	}
	return nil
}
