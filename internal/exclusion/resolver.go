package exclusion

import (
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/lexicon"
)

// Words a requester uses for a whole category.
var categoryTerms = []struct {
	Category domain.Category
	Terms    []string
}{
	{domain.CategoryGuard, []string{"가드"}},
	{domain.CategorySubmission, []string{"서브미션", "서브"}},
	{domain.CategorySweep, []string{"스위프"}},
	{domain.CategoryGuardPass, []string{"패스가드", "가드패스", "패스"}},
	{domain.CategoryEscape, []string{"이스케이프", "탈출"}},
	{domain.CategoryTakedown, []string{"테이크다운"}},
	{domain.CategoryMount, []string{"마운트"}},
	{domain.CategorySideControl, []string{"사이드컨트롤", "사이드"}},
	{domain.CategoryBackControl, []string{"백컨트롤"}},
}

var subTypes = []domain.SubmissionType{
	domain.SubmissionChoke,
	domain.SubmissionJointLock,
	domain.SubmissionLegLock,
	domain.SubmissionPressure,
}

// minContainRunes keeps one-rune fragments out of containment matching.
const minContainRunes = 2

// Set is the resolved exclusion set for one request.
type Set struct {
	Techniques  []string
	Categories  []domain.Category
	FreeText    []string
	Preferences []domain.Preference
}

// Excludes reports whether rec is excluded by name or by category.
func (s Set) Excludes(rec domain.TechniqueRecord) bool {
	for _, c := range s.Categories {
		if rec.Category == c {
			return true
		}
	}
	for _, n := range s.Techniques {
		if rec.Name == n {
			return true
		}
	}
	return false
}

// Empty reports whether nothing was excluded or preferred.
func (s Set) Empty() bool {
	return len(s.Techniques) == 0 && len(s.Categories) == 0 && len(s.FreeText) == 0 && len(s.Preferences) == 0
}

// Resolver maps negation spans onto catalog names and categories.
//
// Resolution is a heuristic. Exact hits on a name, alias, category word or
// submission type win; otherwise the span falls back to substring containment
// against names and aliases, which can over- or under-match when the negated
// words only partly overlap a technique name.
type Resolver struct {
	cat *catalog.Catalog
}

func NewResolver(cat *catalog.Catalog) *Resolver {
	return &Resolver{cat: cat}
}

type resolution struct {
	techniques []string
	categories []domain.Category
}

func (r resolution) empty() bool { return len(r.techniques) == 0 && len(r.categories) == 0 }

func (r *Resolver) Resolve(spans []lexicon.NegationSpan) Set {
	var set Set
	seenTech := map[string]bool{}
	seenCat := map[domain.Category]bool{}
	seenFree := map[string]bool{}

	for _, span := range spans {
		res := r.resolve(candidates(span))
		if res.empty() {
			if span.Phrase != "" && !seenFree[span.Phrase] {
				seenFree[span.Phrase] = true
				set.FreeText = append(set.FreeText, span.Phrase)
			}
		}
		for _, n := range res.techniques {
			if !seenTech[n] {
				seenTech[n] = true
				set.Techniques = append(set.Techniques, n)
			}
		}
		for _, c := range res.categories {
			if !seenCat[c] {
				seenCat[c] = true
				set.Categories = append(set.Categories, c)
			}
		}

		if span.Kind == lexicon.SpanPreference && span.Preferred != "" {
			pref := domain.Preference{Avoid: span.Phrase, Prefer: span.Preferred}
			if rec, ok := r.cat.Lookup(span.Preferred); ok {
				pref.Prefer = rec.Name
			}
			if len(res.techniques) == 1 {
				pref.Avoid = res.techniques[0]
			}
			set.Preferences = append(set.Preferences, pref)
		}
	}
	return set
}

func candidates(span lexicon.NegationSpan) []string {
	var out []string
	seen := map[string]bool{}
	for _, c := range []string{span.Phrase, span.Term, lexicon.TrimParticle(span.Phrase), lexicon.TrimParticle(span.Term)} {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func (r *Resolver) resolve(cands []string) resolution {
	for _, c := range cands {
		if res := r.exact(c); !res.empty() {
			return res
		}
	}
	for _, c := range cands {
		if utf8.RuneCountInString(c) < minContainRunes {
			continue
		}
		if res := r.containing(c); !res.empty() {
			return res
		}
	}
	return resolution{}
}

func (r *Resolver) exact(s string) resolution {
	if rec, ok := r.cat.Lookup(s); ok {
		return resolution{techniques: []string{rec.Name}}
	}
	nospace := strings.ReplaceAll(s, " ", "")
	for _, ct := range categoryTerms {
		for _, term := range ct.Terms {
			if s == term || nospace == term {
				return resolution{categories: []domain.Category{ct.Category}}
			}
		}
	}
	for _, st := range subTypes {
		if s == st.Label() {
			return resolution{techniques: r.cat.BySubType(st)}
		}
	}
	return resolution{}
}

func (r *Resolver) containing(s string) resolution {
	var res resolution
	for _, rec := range r.cat.All() {
		for _, form := range r.cat.AllAliasesOf(rec.Name) {
			if utf8.RuneCountInString(form) < minContainRunes {
				continue
			}
			if strings.Contains(form, s) || strings.Contains(s, form) {
				res.techniques = append(res.techniques, rec.Name)
				break
			}
		}
	}
	if !res.empty() {
		return res
	}
	for _, ct := range categoryTerms {
		for _, term := range ct.Terms {
			if utf8.RuneCountInString(term) >= minContainRunes && strings.Contains(s, term) {
				return resolution{categories: []domain.Category{ct.Category}}
			}
		}
	}
	return res
}
