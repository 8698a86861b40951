package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

func TestComputeNextReview_Ladder(t *testing.T) {
	tests := []struct {
		name         string
		ease         float64
		interval     float64
		quality      int
		wantInterval float64
		wantEase     float64
	}{
		{name: "1日目の正解で6日", ease: 2.5, interval: 1, quality: 5, wantInterval: 6, wantEase: 2.6},
		{name: "6日以下の正解で15日", ease: 2.5, interval: 6, quality: 5, wantInterval: 15, wantEase: 2.6},
		{name: "2日でも15日", ease: 2.5, interval: 2, quality: 3, wantInterval: 15, wantEase: 2.36},
		{name: "7日以上は更新前の係数で乗算", ease: 2.5, interval: 20, quality: 4, wantInterval: 50, wantEase: 2.5},
		{name: "乗算結果は四捨五入", ease: 1.3, interval: 15, quality: 4, wantInterval: 20, wantEase: 1.3},
		{name: "半端な間隔も四捨五入", ease: 2.5, interval: 7.5, quality: 5, wantInterval: 19, wantEase: 2.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNextReview(tt.ease, tt.interval, tt.quality, t0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInterval, got.Interval)
			assert.InDelta(t, tt.wantEase, got.EaseFactor, 1e-9)
			assert.Equal(t, t0.Add(time.Duration(tt.wantInterval)*day), got.ReviewAt)
		})
	}
}

func TestComputeNextReview_ResetOnFailure(t *testing.T) {
	for _, ease := range []float64{1.3, 1.7, 2.5, 3.9} {
		for _, interval := range []float64{1, 6, 15, 120} {
			for q := 0; q < PassingQuality; q++ {
				got, err := ComputeNextReview(ease, interval, q, t0)
				require.NoError(t, err)
				assert.Equal(t, 1.0, got.Interval, "ease=%v interval=%v q=%d", ease, interval, q)
				assert.Equal(t, ease, got.EaseFactor, "ease must be untouched on failure")
				assert.Equal(t, t0.Add(day), got.ReviewAt)
			}
		}
	}
}

func TestComputeNextReview_EaseFloor(t *testing.T) {
	for _, ease := range []float64{1.3, 1.31, 1.4, 2.5} {
		for q := 0; q <= MaxQuality; q++ {
			got, err := ComputeNextReview(ease, 10, q, t0)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.EaseFactor, MinEaseFactor, "ease=%v q=%d", ease, q)
		}
	}

	got, err := ComputeNextReview(1.3, 10, 3, t0)
	require.NoError(t, err)
	assert.Equal(t, MinEaseFactor, got.EaseFactor)

	// 下限未満の係数は不正解でもそのまま返さない
	for _, ease := range []float64{0.5, 1.0, 1.29} {
		for q := 0; q <= MaxQuality; q++ {
			_, err := ComputeNextReview(ease, 10, q, t0)
			assert.ErrorIs(t, err, ErrInvalidEaseFactor, "ease=%v q=%d", ease, q)
		}
	}
}

func TestComputeNextReview_NoUpperBound(t *testing.T) {
	ease, interval := DefaultEaseFactor, InitialIntervalDays
	for i := 0; i < 12; i++ {
		got, err := ComputeNextReview(ease, interval, 5, t0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got.Interval, interval)
		ease, interval = got.EaseFactor, got.Interval
	}
	assert.Greater(t, interval, 10000.0)
	assert.InDelta(t, 3.7, ease, 1e-9)
}

func TestComputeNextReview_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		ease     float64
		interval float64
		quality  int
		wantErr  error
	}{
		{name: "評価が負", ease: 2.5, interval: 1, quality: -1, wantErr: ErrInvalidQuality},
		{name: "評価が6", ease: 2.5, interval: 1, quality: 6, wantErr: ErrInvalidQuality},
		{name: "間隔が0", ease: 2.5, interval: 0, quality: 4, wantErr: ErrInvalidInterval},
		{name: "間隔が負", ease: 2.5, interval: -3, quality: 4, wantErr: ErrInvalidInterval},
		{name: "係数が0", ease: 0, interval: 1, quality: 4, wantErr: ErrInvalidEaseFactor},
		{name: "係数が下限未満で不正解", ease: 0.5, interval: 10, quality: 1, wantErr: ErrInvalidEaseFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeNextReview(tt.ease, tt.interval, tt.quality, t0)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQualityFromCorrect(t *testing.T) {
	assert.Equal(t, 5, QualityFromCorrect(true))
	assert.Equal(t, 1, QualityFromCorrect(false))

	// 境界値の両端は常に有効
	_, err := ComputeNextReview(DefaultEaseFactor, 1, QualityFromCorrect(false), t0)
	assert.NoError(t, err)
	_, err = ComputeNextReview(DefaultEaseFactor, 1, QualityFromCorrect(true), t0)
	assert.NoError(t, err)
}
