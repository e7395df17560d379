package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/exclusion"
	"github.com/alexanderramin/grapple/internal/lexicon"
)

const (
	KeywordPoints   = 3
	ExactNamePoints = 10
	TagPoints       = 2
	PairPoints      = 4
	FuzzyPoints     = KeywordPoints

	PrimaryMin = 5
	RelatedMin = 2

	// Tokens shorter than this never fuzzy-match.
	minFuzzyRunes = 2
	// Float tolerance so exactly-at-threshold similarities count.
	similarityEpsilon = 1e-9
)

type Options struct {
	FuzzyThreshold float64
	MaxPrimary     int
	MaxRelated     int
}

func DefaultOptions() Options {
	return Options{FuzzyThreshold: 0.8, MaxPrimary: 8, MaxRelated: 12}
}

// Result holds the two relevance tiers, each sorted by score descending.
type Result struct {
	Primary []domain.TechniqueMatch
	Related []domain.TechniqueMatch
	// MentionedNames lists techniques whose exact name appears in the text,
	// excluded or not.
	MentionedNames []string
}

// Matcher scores catalog techniques against extracted features.
type Matcher struct {
	cat  *catalog.Catalog
	opts Options
}

func New(cat *catalog.Catalog, opts Options) *Matcher {
	d := DefaultOptions()
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = d.FuzzyThreshold
	}
	if opts.MaxPrimary <= 0 {
		opts.MaxPrimary = d.MaxPrimary
	}
	if opts.MaxRelated <= 0 {
		opts.MaxRelated = d.MaxRelated
	}
	return &Matcher{cat: cat, opts: opts}
}

type scoringInput struct {
	rec         domain.TechniqueRecord
	features    lexicon.Features
	keywordHits map[string]bool
	forms       []string
	threshold   float64
}

var factors = []func(scoringInput) int{
	scoreKeywords,
	scoreExactName,
	scoreTags,
	scoreFuzzy,
}

// Score returns the raw additive score of one technique, ignoring exclusions.
func (m *Matcher) Score(rec domain.TechniqueRecord, f lexicon.Features) int {
	return m.score(rec, f, m.keywordHits(f))
}

func (m *Matcher) Match(f lexicon.Features, ex exclusion.Set) Result {
	var res Result
	hits := m.keywordHits(f)

	var scored []domain.TechniqueMatch
	for _, rec := range m.cat.All() {
		if strings.Contains(f.Normalized, strings.ToLower(rec.Name)) {
			res.MentionedNames = append(res.MentionedNames, rec.Name)
		}
		if ex.Excludes(rec) {
			continue
		}
		if s := m.score(rec, f, hits); s >= RelatedMin {
			scored = append(scored, rec.Match(s))
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	for _, tm := range scored {
		switch {
		case tm.Score >= PrimaryMin:
			if len(res.Primary) < m.opts.MaxPrimary {
				res.Primary = append(res.Primary, tm)
			}
		default:
			if len(res.Related) < m.opts.MaxRelated {
				res.Related = append(res.Related, tm)
			}
		}
	}
	return res
}

// keywordHits maps technique name to the set of input tokens that hit it
// through the keyword index.
func (m *Matcher) keywordHits(f lexicon.Features) map[string]map[string]bool {
	hits := make(map[string]map[string]bool)
	for _, tok := range f.Tokens {
		for _, name := range m.cat.ByKeyword(tok) {
			if hits[name] == nil {
				hits[name] = make(map[string]bool)
			}
			hits[name][tok] = true
		}
	}
	return hits
}

func (m *Matcher) score(rec domain.TechniqueRecord, f lexicon.Features, hits map[string]map[string]bool) int {
	in := scoringInput{
		rec:         rec,
		features:    f,
		keywordHits: hits[rec.Name],
		forms:       m.cat.AllAliasesOf(rec.Name),
		threshold:   m.opts.FuzzyThreshold,
	}
	total := 0
	for _, factor := range factors {
		total += factor(in)
	}
	return total
}

// Every occurrence of an indexed token counts.
func scoreKeywords(in scoringInput) int {
	score := 0
	for _, tok := range in.features.Tokens {
		if in.keywordHits[tok] {
			score += KeywordPoints
		}
	}
	return score
}

func scoreExactName(in scoringInput) int {
	if strings.Contains(in.features.Normalized, strings.ToLower(in.rec.Name)) {
		return ExactNamePoints
	}
	return 0
}

func scoreTags(in scoringInput) int {
	score := 0
	for _, desc := range in.rec.Descriptions {
		d := strings.ToLower(desc)
		var parts, actions []string
		for _, bp := range in.features.BodyParts {
			if strings.Contains(d, bp) {
				parts = append(parts, bp)
			}
		}
		for _, a := range in.features.Actions {
			if strings.Contains(d, a) {
				actions = append(actions, a)
			}
		}
		score += TagPoints * (len(parts) + len(actions))
		score += PairPoints * len(parts) * len(actions)
	}
	return score
}

// A token that is close enough to the name or an alias counts like a keyword
// hit, unless it already hit through the keyword index.
func scoreFuzzy(in scoringInput) int {
	score := 0
	for _, tok := range in.features.Tokens {
		if in.keywordHits[tok] || utf8.RuneCountInString(tok) < minFuzzyRunes {
			continue
		}
		variants := []string{tok}
		if trimmed := lexicon.TrimParticle(tok); trimmed != tok {
			variants = append(variants, trimmed)
		}
		if bestSimilarity(variants, in.forms) >= in.threshold-similarityEpsilon {
			score += FuzzyPoints
		}
	}
	return score
}

func bestSimilarity(tokens, forms []string) float64 {
	best := 0.0
	for _, t := range tokens {
		for _, f := range forms {
			if s := Similarity(t, f); s > best {
				best = s
			}
		}
	}
	return best
}
