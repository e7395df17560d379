package service

import (
	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/confidence"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/exclusion"
	"github.com/alexanderramin/grapple/internal/intent"
	"github.com/alexanderramin/grapple/internal/lexicon"
	"github.com/alexanderramin/grapple/internal/matcher"
)

// maxTakedownSuggestions bounds the standing-game suggestions.
const maxTakedownSuggestions = 8

// AnalysisPipeline runs the uncached analysis stages in order:
// extract, classify, resolve exclusions, match, score confidence.
type AnalysisPipeline struct {
	cat        *catalog.Catalog
	extractor  *lexicon.Extractor
	classifier *intent.Classifier
	resolver   *exclusion.Resolver
	matcher    *matcher.Matcher
}

func NewAnalysisPipeline(cat *catalog.Catalog, opts matcher.Options) *AnalysisPipeline {
	return &AnalysisPipeline{
		cat:        cat,
		extractor:  lexicon.NewExtractor(),
		classifier: intent.NewClassifier(),
		resolver:   exclusion.NewResolver(cat),
		matcher:    matcher.New(cat, opts),
	}
}

// Normalize is the cache key for text.
func (p *AnalysisPipeline) Normalize(text string) string {
	return p.extractor.Normalize(text)
}

// Run never fails. Unrecognized input degrades to the neutral classification.
func (p *AnalysisPipeline) Run(text string) *domain.AnalysisResult {
	f := p.extractor.Extract(text)
	cls := p.classifier.Classify(f.Normalized)
	ex := p.resolver.Resolve(f.Negations)
	matched := p.matcher.Match(f, ex)

	res := &domain.AnalysisResult{
		Text:                 f.Raw,
		NormalizedText:       f.Normalized,
		Intent:               cls.Intent,
		IntentConfidence:     cls.Confidence,
		DetectedIntents:      nonNil(cls.Detected),
		DifficultyPreference: cls.Difficulty,
		DifficultyCue:        f.DifficultyCue,
		BodyParts:            nonNil(f.BodyParts),
		Actions:              nonNil(f.Actions),
		Intensity:            f.Intensity,
		IntensityScore:       f.Intensity.Score(),
		Emotions:             nonNil(f.Emotions),
		IsBeginner:           f.IsBeginner,
		ExcludedTechniques:   nonNil(ex.Techniques),
		ExcludedCategories:   nonNil(ex.Categories),
		FreeTextExclusions:   nonNil(ex.FreeText),
		Preferences:          nonNil(ex.Preferences),
		PrimaryMatches:       nonNil(matched.Primary),
		RelatedMatches:       nonNil(matched.Related),
		TakedownSuggestions:  p.takedowns(f, ex),
	}
	res.Confidence = confidence.Analysis(f.Normalized, cls.Confidence, len(matched.MentionedNames) > 0)
	res.MatchConfidence = confidence.Matches(res.AllMatches())
	return res
}

// takedowns lists catalog takedowns in catalog order when the request
// mentions the standing game.
func (p *AnalysisPipeline) takedowns(f lexicon.Features, ex exclusion.Set) []domain.TechniqueMatch {
	out := []domain.TechniqueMatch{}
	if !f.TakedownCue {
		return out
	}
	for _, name := range p.cat.ByCategory(domain.CategoryTakedown) {
		rec, ok := p.cat.ByExactName(name)
		if !ok || ex.Excludes(rec) {
			continue
		}
		out = append(out, rec.Match(p.matcher.Score(rec, f)))
		if len(out) == maxTakedownSuggestions {
			break
		}
	}
	return out
}

// withMastery annotates every match the user has history for.
func withMastery(res *domain.AnalysisResult, weights map[string]float64) {
	for _, list := range [][]domain.TechniqueMatch{res.PrimaryMatches, res.RelatedMatches, res.TakedownSuggestions} {
		for i := range list {
			if lvl, ok := weights[list[i].Name]; ok {
				list[i].Mastery = &lvl
			}
		}
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
