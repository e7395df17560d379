package domain

// ProgramMeta describes how a program was synthesized.
type ProgramMeta struct {
	TotalMinutes    int               `json:"total_minutes"`
	Difficulty      ProgramDifficulty `json:"difficulty"`
	SkillMultiplier float64           `json:"skill_multiplier"`
	Belt            Belt              `json:"belt"`
	QualityScore    float64           `json:"quality_score"`
	// Techniques is the emitted main-session order.
	Techniques []string `json:"techniques"`
}

// PhaseBlock is a warmup or cooldown phase built from fixed exercises.
type PhaseBlock struct {
	Minutes   int      `json:"minutes"`
	Exercises []string `json:"exercises"`
	Focus     string   `json:"focus"`
}

// TimeSplit divides one technique's allocation. The parts always sum to the allocation.
type TimeSplit struct {
	ExplanationMin int `json:"explanation_min"`
	DrillMin       int `json:"drill_min"`
	ApplicationMin int `json:"application_min"`
}

func (s TimeSplit) Total() int { return s.ExplanationMin + s.DrillMin + s.ApplicationMin }

// TechniqueBlock is one entry of the main session.
type TechniqueBlock struct {
	Technique      string    `json:"technique"`
	Category       Category  `json:"category"`
	Difficulty     int       `json:"difficulty"`
	Minutes        int       `json:"minutes"`
	Split          TimeSplit `json:"split"`
	KeyPoints      []string  `json:"key_points"`
	CommonMistakes []string  `json:"common_mistakes"`
	DifficultyTips []string  `json:"difficulty_tips"`
}

// MainPhase holds the ordered technique blocks and the phase budget.
type MainPhase struct {
	Minutes int              `json:"minutes"`
	Blocks  []TechniqueBlock `json:"blocks"`
}

// AllocatedMinutes sums the per-technique allocations.
func (m MainPhase) AllocatedMinutes() int {
	total := 0
	for _, b := range m.Blocks {
		total += b.Minutes
	}
	return total
}

// Combination is a suggested technique chain for two selected techniques.
type Combination struct {
	First          string `json:"first"`
	Second         string `json:"second"`
	Connection     string `json:"connection"`
	PracticeMethod string `json:"practice_method"`
}

// TrainingProgram is a synthesized, time-boxed session plan.
type TrainingProgram struct {
	Meta            ProgramMeta   `json:"meta"`
	Warmup          PhaseBlock    `json:"warmup"`
	Main            MainPhase     `json:"main"`
	Cooldown        PhaseBlock    `json:"cooldown"`
	Combinations    []Combination `json:"combinations"`
	ProgressionTips []string      `json:"progression_tips"`
	// SkippedIDs lists requested techniques that are not in the catalog.
	SkippedIDs []string `json:"skipped_ids,omitempty"`
}

// TotalMinutes sums the three phase budgets.
func (p *TrainingProgram) TotalMinutes() int {
	return p.Warmup.Minutes + p.Main.Minutes + p.Cooldown.Minutes
}

// Summary condenses the program for the training log.
func (p *TrainingProgram) Summary(name string) ProgramSummary {
	return ProgramSummary{
		Name:         name,
		Techniques:   append([]string(nil), p.Meta.Techniques...),
		DurationMin:  p.Meta.TotalMinutes,
		Difficulty:   p.Meta.Difficulty,
		QualityScore: p.Meta.QualityScore,
	}
}
