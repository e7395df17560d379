package synth

import (
	"math"
	"sort"

	"github.com/alexanderramin/grapple/internal/domain"
)

const (
	minPhaseMin     = 5
	phasePercent    = 15
	minTechniqueMin = 5.0

	complexityPivot = 3.0
	maxComplexity   = 1.5
	minSkillFactor  = 0.7
	skillPivot      = 2.0

	// Allocations at least this long use the fixed minimum sub-blocks.
	splitThreshold = 10
)

type phaseBudget struct {
	Warmup, Main, Cooldown int
}

// splitPhases gives warmup and cooldown 15% each (at least five minutes) and
// the rest to the main session. Totals too short for both minimums are split
// between warmup and cooldown so the phases still add up to the total.
func splitPhases(total int) phaseBudget {
	if total <= 0 {
		return phaseBudget{}
	}
	if total < 2*minPhaseMin {
		w := total / 2
		return phaseBudget{Warmup: w, Cooldown: total - w}
	}
	w := max(minPhaseMin, total*phasePercent/100)
	c := max(minPhaseMin, total*phasePercent/100)
	return phaseBudget{Warmup: w, Main: total - w - c, Cooldown: c}
}

// rawAllocation is the unnormalized minutes for one technique.
func rawAllocation(base float64, tier int, difficulty domain.ProgramDifficulty, skill float64) float64 {
	complexity := math.Min(float64(tier)/complexityPivot, maxComplexity)
	skillFactor := math.Max(minSkillFactor, skillPivot-skill)
	return math.Max(minTechniqueMin, base*difficulty.Modifier()*complexity*skillFactor)
}

// renormalize scales raw so the integer results sum exactly to total, using
// the largest-remainder method. Ties go to the earlier index.
func renormalize(raw []float64, total int) []int {
	out := make([]int, len(raw))
	if len(raw) == 0 || total <= 0 {
		return out
	}
	sum := 0.0
	for _, r := range raw {
		sum += r
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return out
	}

	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, len(raw))
	assigned := 0
	for i, r := range raw {
		exact := r * float64(total) / sum
		floor := math.Floor(exact)
		out[i] = int(floor)
		assigned += out[i]
		rems[i] = rem{idx: i, frac: exact - floor}
	}

	sort.SliceStable(rems, func(i, j int) bool { return rems[i].frac > rems[j].frac })
	for i := 0; assigned < total; i = (i + 1) % len(rems) {
		out[rems[i].idx]++
		assigned++
	}
	return out
}

// splitTechnique divides one allocation into explanation, drill and
// application time. The parts always sum to minutes.
func splitTechnique(minutes int) domain.TimeSplit {
	if minutes <= 0 {
		return domain.TimeSplit{}
	}
	var ex, app int
	if minutes >= splitThreshold {
		ex = max(2, int(math.Round(float64(minutes)*0.2)))
		app = max(3, int(math.Round(float64(minutes)*0.3)))
	} else {
		ex = minutes * 2 / 10
		app = minutes * 3 / 10
	}
	return domain.TimeSplit{ExplanationMin: ex, DrillMin: minutes - ex - app, ApplicationMin: app}
}
