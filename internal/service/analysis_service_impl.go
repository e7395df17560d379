package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/grapple/internal/cache"
	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/contract"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/matcher"
	"github.com/alexanderramin/grapple/internal/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultCacheCapacity = 100
	DefaultMaxInputRunes = 2000
)

type AnalysisOptions struct {
	Matcher       matcher.Options
	CacheCapacity int
	CachePolicy   cache.Policy
	MaxInputRunes int
}

func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Matcher:       matcher.DefaultOptions(),
		CacheCapacity: DefaultCacheCapacity,
		CachePolicy:   cache.PolicyLRU,
		MaxInputRunes: DefaultMaxInputRunes,
	}
}

type analysisService struct {
	pipeline *AnalysisPipeline
	cache    *cache.Cache[*domain.AnalysisResult]
	maxRunes int
	metrics  *metrics.Metrics
	observer UseCaseObserver

	// compute is the uncached path; tests wrap it to count invocations.
	compute func(text string) *domain.AnalysisResult
}

func NewAnalysisService(
	cat *catalog.Catalog,
	opts AnalysisOptions,
	m *metrics.Metrics,
	observers ...UseCaseObserver,
) AnalysisService {
	if opts.MaxInputRunes <= 0 {
		opts.MaxInputRunes = DefaultMaxInputRunes
	}
	pipeline := NewAnalysisPipeline(cat, opts.Matcher)
	return &analysisService{
		pipeline: pipeline,
		cache:    cache.New[*domain.AnalysisResult](opts.CacheCapacity, opts.CachePolicy),
		maxRunes: opts.MaxInputRunes,
		metrics:  m,
		observer: useCaseObserverOrNoop(observers),
		compute:  pipeline.Run,
	}
}

func (s *analysisService) AnalyzeRequest(ctx context.Context, req contract.AnalyzeRequest) (result *domain.AnalysisResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "analyze-request", startedAt, fields, &err)

	if err = s.validate(req.Text); err != nil {
		return nil, err
	}

	key := s.pipeline.Normalize(req.Text)
	cached, hit, err := s.cache.GetOrCompute(key, func() (*domain.AnalysisResult, error) {
		return s.compute(req.Text), nil
	})
	if err != nil {
		err = contract.Internal(err)
		return nil, err
	}

	// The cached value is shared; callers get their own copy.
	result = cached.Clone()
	result.Text = req.Text
	if req.User != nil && len(req.User.HistoryWeights) > 0 {
		withMastery(result, req.User.HistoryWeights)
	}

	fields["intent"] = string(result.Intent)
	fields["cache_hit"] = hit
	fields["primary"] = len(result.PrimaryMatches)
	s.metrics.ObserveAnalysis(string(result.Intent), hit, time.Since(startedAt))
	return result, nil
}

func (s *analysisService) validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return contract.InvalidInput("text must not be empty")
	}
	if n := utf8.RuneCountInString(text); n > s.maxRunes {
		return contract.InvalidInput("text is %d characters, limit is %d", n, s.maxRunes)
	}
	return nil
}

func (s *analysisService) AnalyzeBatch(ctx context.Context, texts []string, workers int) ([]*domain.AnalysisResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*domain.AnalysisResult, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.AnalyzeRequest(gctx, contract.NewAnalyzeRequest(text))
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *analysisService) CacheStats() cache.Stats {
	return s.cache.Stats()
}
