package service

import (
	"context"
	"time"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/metrics"
	"github.com/alexanderramin/grapple/internal/synth"
)

type programService struct {
	synth    *synth.Synthesizer
	metrics  *metrics.Metrics
	observer UseCaseObserver
}

func NewProgramService(cat *catalog.Catalog, m *metrics.Metrics, observers ...UseCaseObserver) ProgramService {
	return &programService{
		synth:    synth.New(cat),
		metrics:  m,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *programService) GenerateProgram(ctx context.Context, req contract.ProgramRequest) (prog *domain.TrainingProgram, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"duration_min": req.DurationMin,
		"requested":    len(req.TechniqueIDs),
	}
	defer observe(ctx, s.observer, "generate-program", startedAt, fields, &err)

	var sreq synth.Request
	if sreq, err = toSynthRequest(req); err != nil {
		return nil, err
	}

	p := s.synth.Synthesize(sreq)
	fields["difficulty"] = string(p.Meta.Difficulty)
	fields["skipped"] = len(p.SkippedIDs)
	s.metrics.ObserveProgram(string(p.Meta.Difficulty), p.Meta.TotalMinutes, len(p.SkippedIDs))
	return &p, nil
}

// toSynthRequest fills zero values with defaults and rejects everything the
// synthesizer cannot honor.
func toSynthRequest(req contract.ProgramRequest) (synth.Request, error) {
	if req.DurationMin <= 0 {
		return synth.Request{}, contract.InvalidInput("duration must be positive, got %d", req.DurationMin)
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = domain.ProgramNormal
	}
	if !difficulty.Valid() {
		return synth.Request{}, contract.InvalidInput("unknown difficulty %q", req.Difficulty)
	}

	skill := req.SkillMultiplier
	switch {
	case skill == 0:
		skill = domain.DefaultSkillMultiplier
	case !domain.ValidSkillMultiplier(skill):
		return synth.Request{}, contract.InvalidInput("skill multiplier must be a positive number, got %g", req.SkillMultiplier)
	}

	belt := req.Belt
	if belt == "" {
		belt = domain.BeltWhite
	}
	if !belt.Valid() {
		return synth.Request{}, contract.InvalidInput("unknown belt %q", req.Belt)
	}

	return synth.Request{
		TechniqueIDs:    req.TechniqueIDs,
		SkillMultiplier: skill,
		Belt:            belt,
		TotalMinutes:    req.DurationMin,
		Difficulty:      difficulty,
	}, nil
}
