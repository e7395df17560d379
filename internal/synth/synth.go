package synth

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/domain"
)

// Request is the input to a single synthesis. TechniqueIDs may hold names or
// aliases; ids the catalog does not know are reported in SkippedIDs.
type Request struct {
	TechniqueIDs    []string
	SkillMultiplier float64
	Belt            domain.Belt
	TotalMinutes    int
	Difficulty      domain.ProgramDifficulty
}

// Synthesizer builds time-boxed training programs from a catalog.
type Synthesizer struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Synthesizer {
	return &Synthesizer{cat: cat}
}

// Synthesize never fails: input validation happens at the service boundary.
func (s *Synthesizer) Synthesize(req Request) domain.TrainingProgram {
	skill := req.SkillMultiplier
	if !domain.ValidSkillMultiplier(skill) {
		skill = domain.DefaultSkillMultiplier
	}
	difficulty := req.Difficulty
	if !difficulty.Valid() {
		difficulty = domain.ProgramNormal
	}

	selected, skipped := s.resolve(req.TechniqueIDs)
	budget := splitPhases(req.TotalMinutes)
	ordered := orderTechniques(selected)

	prog := domain.TrainingProgram{
		Meta: domain.ProgramMeta{
			TotalMinutes:    req.TotalMinutes,
			Difficulty:      difficulty,
			SkillMultiplier: skill,
			Belt:            req.Belt,
			QualityScore:    qualityScore(selected),
			Techniques:      make([]string, 0, len(ordered)),
		},
		Warmup:          warmupPhase(budget.Warmup, ordered),
		Main:            domain.MainPhase{Minutes: budget.Main, Blocks: []domain.TechniqueBlock{}},
		Cooldown:        cooldownPhase(budget.Cooldown),
		Combinations:    combinations(selected),
		ProgressionTips: progressionTips(req.Belt, selected),
		SkippedIDs:      skipped,
	}

	if len(ordered) == 0 {
		return prog
	}

	base := float64(budget.Main) / float64(len(ordered))
	raw := make([]float64, len(ordered))
	for i, rec := range ordered {
		raw[i] = rawAllocation(base, rec.Difficulty, difficulty, skill)
	}
	minutes := renormalize(raw, budget.Main)

	for i, rec := range ordered {
		prog.Meta.Techniques = append(prog.Meta.Techniques, rec.Name)
		prog.Main.Blocks = append(prog.Main.Blocks, domain.TechniqueBlock{
			Technique:      rec.Name,
			Category:       rec.Category,
			Difficulty:     rec.Difficulty,
			Minutes:        minutes[i],
			Split:          splitTechnique(minutes[i]),
			KeyPoints:      lookupOr(keyPoints, rec.Category, defaultKeyPoints),
			CommonMistakes: lookupOr(commonMistakes, rec.Category, defaultMistakes),
			DifficultyTips: difficultyTips(difficulty, rec.Difficulty),
		})
	}
	return prog
}

// resolve maps ids to catalog records in first-seen order, dropping
// duplicates. Two ids naming the same technique collapse to one.
func (s *Synthesizer) resolve(ids []string) ([]domain.TechniqueRecord, []string) {
	seen := make(map[string]bool, len(ids))
	unknown := make(map[string]bool)
	var (
		out     []domain.TechniqueRecord
		skipped []string
	)
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		rec, ok := s.cat.Lookup(id)
		if !ok {
			if !unknown[id] {
				unknown[id] = true
				skipped = append(skipped, id)
			}
			continue
		}
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		out = append(out, rec)
	}
	return out, skipped
}

// orderTechniques sorts by tier and then pulls same-category techniques up
// behind the first of their category, so related work stays adjacent.
func orderTechniques(recs []domain.TechniqueRecord) []domain.TechniqueRecord {
	sorted := append([]domain.TechniqueRecord(nil), recs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Difficulty < sorted[j].Difficulty })

	emitted := make([]bool, len(sorted))
	out := make([]domain.TechniqueRecord, 0, len(sorted))
	for i, rec := range sorted {
		if emitted[i] {
			continue
		}
		emitted[i] = true
		out = append(out, rec)
		for j := i + 1; j < len(sorted); j++ {
			if !emitted[j] && sorted[j].Category == rec.Category {
				emitted[j] = true
				out = append(out, sorted[j])
			}
		}
	}
	return out
}

func warmupPhase(minutes int, recs []domain.TechniqueRecord) domain.PhaseBlock {
	var (
		exercises []string
		labels    []string
	)
	seenEx := make(map[string]bool)
	seenCat := make(map[domain.Category]bool)
	add := func(ex string) {
		if !seenEx[ex] {
			seenEx[ex] = true
			exercises = append(exercises, ex)
		}
	}
	for _, rec := range recs {
		if seenCat[rec.Category] {
			continue
		}
		seenCat[rec.Category] = true
		labels = append(labels, rec.Category.Label())
		for _, ex := range warmupByCategory[rec.Category] {
			add(ex)
		}
	}
	for _, ex := range baseWarmup {
		add(ex)
	}

	focus := wholeBodyFocus
	if len(labels) > 0 {
		focus = fmt.Sprintf("주요 기술(%s) 준비", strings.Join(labels, ", "))
	}
	return domain.PhaseBlock{Minutes: minutes, Exercises: exercises, Focus: focus}
}

func cooldownPhase(minutes int) domain.PhaseBlock {
	return domain.PhaseBlock{
		Minutes:   minutes,
		Exercises: clone(cooldown.Exercises),
		Focus:     cooldown.Focus,
	}
}

// combinations enumerates pairs (i<j) in selection order. A pair matches
// when the table has a transition in either direction; the suggestion is
// oriented the way the table reads.
func combinations(recs []domain.TechniqueRecord) []domain.Combination {
	out := []domain.Combination{}
	for i := 0; i < len(recs); i++ {
		for j := i + 1; j < len(recs); j++ {
			first, second, conn, ok := connect(recs[i], recs[j])
			if !ok {
				continue
			}
			out = append(out, domain.Combination{
				First:          first,
				Second:         second,
				Connection:     conn,
				PracticeMethod: practiceMethod(first, second),
			})
			if len(out) == maxCombinations {
				return out
			}
		}
	}
	return out
}

func connect(a, b domain.TechniqueRecord) (first, second, connection string, ok bool) {
	for _, t := range transitions {
		if t.From == a.Category && t.To == b.Category {
			return a.Name, b.Name, t.Connection, true
		}
		if t.From == b.Category && t.To == a.Category {
			return b.Name, a.Name, t.Connection, true
		}
	}
	return "", "", "", false
}

func progressionTips(belt domain.Belt, recs []domain.TechniqueRecord) []string {
	advice, ok := beltAdvice[belt]
	if !ok {
		advice = defaultBeltAdvice
	}
	tips := []string{advice}

	if len(recs) > 0 {
		if averageTier(recs) > hardSetAverage {
			tips = append(tips, hardSetAdvice)
		} else if distinctCategories(recs) > diverseSetCategory {
			tips = append(tips, diverseSetAdvice)
		}
	}
	return append(tips, closingAdvice)
}

// qualityScore averages category diversity and mean tier, each scaled so
// that three is "full marks".
func qualityScore(recs []domain.TechniqueRecord) float64 {
	if len(recs) == 0 {
		return 0
	}
	diversity := math.Min(float64(distinctCategories(recs))/3, 1)
	depth := math.Min(averageTier(recs)/3, 1)
	return math.Round((diversity+depth)/2*100) / 100
}

func averageTier(recs []domain.TechniqueRecord) float64 {
	total := 0
	for _, r := range recs {
		total += r.Difficulty
	}
	return float64(total) / float64(len(recs))
}

func distinctCategories(recs []domain.TechniqueRecord) int {
	seen := make(map[domain.Category]bool)
	for _, r := range recs {
		seen[r.Category] = true
	}
	return len(seen)
}
