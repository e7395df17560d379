package synth

import (
	"math"
	"testing"

	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSplitPhases(t *testing.T) {
	tests := []struct {
		total int
		want  phaseBudget
	}{
		{60, phaseBudget{Warmup: 9, Main: 42, Cooldown: 9}},
		{30, phaseBudget{Warmup: 5, Main: 20, Cooldown: 5}},
		{90, phaseBudget{Warmup: 13, Main: 64, Cooldown: 13}},
		{10, phaseBudget{Warmup: 5, Main: 0, Cooldown: 5}},
		{8, phaseBudget{Warmup: 4, Main: 0, Cooldown: 4}},
		{7, phaseBudget{Warmup: 3, Main: 0, Cooldown: 4}},
		{0, phaseBudget{}},
	}
	for _, tt := range tests {
		got := splitPhases(tt.total)
		assert.Equal(t, tt.want, got, "total=%d", tt.total)
		if tt.total > 0 {
			assert.Equal(t, tt.total, got.Warmup+got.Main+got.Cooldown)
		}
	}
}

func TestRawAllocation(t *testing.T) {
	assert.InDelta(t, 10.0, rawAllocation(10, 3, domain.ProgramNormal, 1.0), 1e-9)
	// tier 5 caps complexity at 1.5; skill 0.5 gives factor 1.5
	assert.InDelta(t, 29.25, rawAllocation(10, 5, domain.ProgramHard, 0.5), 1e-9)
	// skill factor never drops below 0.7
	assert.InDelta(t, 20*0.8*(2.0/3.0)*0.7, rawAllocation(20, 2, domain.ProgramEasy, 3.0), 1e-9)
	// floored at five minutes
	assert.Equal(t, 5.0, rawAllocation(1, 1, domain.ProgramEasy, 2.0))
}

func TestRenormalize(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, renormalize([]float64{1, 1, 1}, 10), "ties go to the earlier index")
	assert.Equal(t, []int{2, 5}, renormalize([]float64{5, 10}, 7))
	assert.Equal(t, []int{0, 0}, renormalize([]float64{5, 5}, 0))
	assert.Empty(t, renormalize(nil, 10))
	assert.Equal(t, []int{0, 0}, renormalize([]float64{math.NaN(), 5}, 10), "non-finite input allocates nothing")
	assert.Equal(t, []int{0}, renormalize([]float64{math.Inf(1)}, 10))
}

func TestSplitTechnique(t *testing.T) {
	tests := []struct {
		minutes int
		want    domain.TimeSplit
	}{
		{20, domain.TimeSplit{ExplanationMin: 4, DrillMin: 10, ApplicationMin: 6}},
		{10, domain.TimeSplit{ExplanationMin: 2, DrillMin: 5, ApplicationMin: 3}},
		{9, domain.TimeSplit{ExplanationMin: 1, DrillMin: 6, ApplicationMin: 2}},
		{3, domain.TimeSplit{ExplanationMin: 0, DrillMin: 3, ApplicationMin: 0}},
		{0, domain.TimeSplit{}},
	}
	for _, tt := range tests {
		got := splitTechnique(tt.minutes)
		assert.Equal(t, tt.want, got, "minutes=%d", tt.minutes)
		assert.Equal(t, tt.minutes, got.Total())
	}
}
