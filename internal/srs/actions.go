package srs

import (
	"math"
	"time"
)

// ApplyReview は通常の復習結果を反映したコピーを返します。入力は変更しません。
func ApplyReview(item Item, quality int, now time.Time) (Item, error) {
	next, err := ComputeNextReview(item.EaseFactor, item.IntervalDays, quality, now)
	if err != nil {
		return Item{}, err
	}

	out := item.clone()
	out.IntervalDays = next.Interval
	out.EaseFactor = next.EaseFactor
	out.NextReviewAt = next.ReviewAt
	out.TimesSeen++
	if quality >= PassingQuality {
		out.TimesCorrect++
	}
	out.MasteryLevel = clampMastery(out.MasteryLevel + masteryDelta(quality))
	seen := now
	out.LastSeenAt = &seen
	return out, nil
}

// ApplyReviewWithDifficulty は ApplyReview に加えて難易度を上書きします。
func ApplyReviewWithDifficulty(item Item, quality, difficulty int, now time.Time) (Item, error) {
	if err := validateDifficulty(difficulty); err != nil {
		return Item{}, err
	}
	out, err := ApplyReview(item, quality, now)
	if err != nil {
		return Item{}, err
	}
	out.DifficultyRating = difficulty
	return out, nil
}

// ApplyMaster は「覚えた」操作です。間隔計算は通さず固定値を設定します。
func ApplyMaster(item Item, now time.Time) Item {
	out := item.clone()
	out.IsMastered = true
	out.MasteryLevel = MaxMasteryLevel
	out.IntervalDays = MasteredIntervalDays
	out.EaseFactor = MasteredEaseFactor
	out.NextReviewAt = addDays(now, MasteredIntervalDays)
	out.TimesSeen++
	out.TimesCorrect++
	seen := now
	out.LastSeenAt = &seen
	return out
}

// ApplyUnmaster は「覚えた」を取り消し、即座に復習対象へ戻します。
// 間隔と係数はそのまま残します。
func ApplyUnmaster(item Item, now time.Time) Item {
	out := item.clone()
	out.IsMastered = false
	out.NextReviewAt = now
	return out
}

// ApplyStar は苦手マーク操作です。難易度を 5 にし、間隔を半分(下限 1 日)にします。
func ApplyStar(item Item, now time.Time) Item {
	out := item.clone()
	out.DifficultyRating = StarredDifficulty
	out.IntervalDays = math.Max(InitialIntervalDays, item.IntervalDays/2)
	out.NextReviewAt = addDays(now, out.IntervalDays)
	out.TimesSeen++
	seen := now
	out.LastSeenAt = &seen
	return out
}

func masteryDelta(quality int) float64 {
	switch {
	case quality >= 4:
		return 0.5
	case quality == PassingQuality:
		return 0.2
	default:
		return -0.3
	}
}

func clampMastery(v float64) float64 {
	return math.Min(MaxMasteryLevel, math.Max(0, v))
}
