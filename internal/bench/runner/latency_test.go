package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats_Empty(t *testing.T) {
	stats := ComputeLatencyStats(nil)
	assert.Zero(t, stats.Min)
	assert.Zero(t, stats.Max)
	assert.Zero(t, stats.Mean)
	assert.Zero(t, stats.SampleCount)
	assert.True(t, stats.IsZero())
}

func TestComputeLatencyStats_SingleValue(t *testing.T) {
	stats := ComputeLatencyStats([]time.Duration{10 * time.Millisecond})

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 10*time.Millisecond, stats.Max)
	assert.Equal(t, 10*time.Millisecond, stats.Mean)
	assert.Equal(t, 10*time.Millisecond, stats.P50())
	assert.Equal(t, 1, stats.SampleCount)
	assert.Zero(t, stats.Stddev)
	assert.False(t, stats.IsZero())
}

func TestComputeLatencyStats_MultipleValues(t *testing.T) {
	stats := ComputeLatencyStats([]time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
		50 * time.Millisecond,
	})

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 50*time.Millisecond, stats.Max)
	assert.Equal(t, 30*time.Millisecond, stats.Mean)
	assert.Equal(t, 30*time.Millisecond, stats.P50())
	assert.Equal(t, 5, stats.SampleCount)
	assert.Positive(t, stats.Stddev)
}

func TestComputeLatencyStats_PercentileInterpolation(t *testing.T) {
	// p50 of an even count falls between the two middle samples.
	stats := ComputeLatencyStats([]time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
	})

	assert.Equal(t, 25*time.Millisecond, stats.P50())
	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 40*time.Millisecond, stats.Max)
}

func TestComputeLatencyStats_UnsortedInput(t *testing.T) {
	stats := ComputeLatencyStats([]time.Duration{
		50 * time.Millisecond,
		10 * time.Millisecond,
		30 * time.Millisecond,
	})

	assert.Equal(t, 10*time.Millisecond, stats.Min)
	assert.Equal(t, 50*time.Millisecond, stats.Max)
	assert.Equal(t, 30*time.Millisecond, stats.P50())
}

func TestMergeLatencyStats(t *testing.T) {
	a := ComputeLatencyStats([]time.Duration{10 * time.Millisecond, 20 * time.Millisecond})
	b := ComputeLatencyStats([]time.Duration{30 * time.Millisecond, 40 * time.Millisecond})

	merged := MergeLatencyStats([]LatencyStats{a, b})
	assert.Equal(t, 4, merged.SampleCount)
	assert.Equal(t, 10*time.Millisecond, merged.Min)
	assert.Equal(t, 40*time.Millisecond, merged.Max)
	assert.Equal(t, 25*time.Millisecond, merged.Mean)
}

func TestMergeLatencyStats_Empty(t *testing.T) {
	merged := MergeLatencyStats(nil)
	assert.True(t, merged.IsZero())
}
