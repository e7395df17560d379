package lexicon

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SpanKind distinguishes hard exclusions from "A rather than B" preferences.
type SpanKind string

const (
	SpanExclusive  SpanKind = "exclusive"
	SpanPreference SpanKind = "preference"
)

// NegationSpan is one excluded phrase found in the normalized text.
type NegationSpan struct {
	Kind SpanKind
	// Phrase is the negated text with trailing particles removed; it may span two words.
	Phrase string
	// Term is the last word of Phrase.
	Term string
	// Preferred is the alternative named by a preference span.
	Preferred string
}

const word = `[\p{L}\p{N}/]`

var (
	// "<term>(은|는|을|를|...) (하지) 말고|빼고|제외하고", optionally with one leading word.
	exclusivePattern = regexp.MustCompile(
		`(?:^|\s)((?:` + word + `+\s+)??` + word + `+?)(?:들)?(?:은|는|을|를|이|가|도)?(?:\s*하지)?\s*(?:말고|빼고|제외하고)`)
	// "<term>보다(는) <term2>"
	preferencePattern = regexp.MustCompile(
		`(?:^|\s)(` + word + `+?)(?:은|는|을|를|이|가)?보다는?\s*(` + word + `+)`)
	// "<term> 대신(에) <term2>"
	insteadPattern = regexp.MustCompile(
		`(?:^|\s)(` + word + `+?)(?:은|는|을|를|이|가)?\s*대신에?\s+(` + word + `+)`)
)

var particles = []string{"으로", "을", "를", "은", "는", "이", "가", "도", "로"}

// TrimParticle strips one trailing case particle when at least two runes remain.
func TrimParticle(s string) string {
	for _, p := range particles {
		if strings.HasSuffix(s, p) {
			rest := strings.TrimSuffix(s, p)
			if utf8.RuneCountInString(rest) >= 2 {
				return rest
			}
		}
	}
	return s
}

func extractNegations(normalized string) []NegationSpan {
	var spans []NegationSpan
	for _, m := range exclusivePattern.FindAllStringSubmatch(normalized, -1) {
		spans = append(spans, newSpan(SpanExclusive, m[1], ""))
	}
	for _, re := range []*regexp.Regexp{preferencePattern, insteadPattern} {
		for _, m := range re.FindAllStringSubmatch(normalized, -1) {
			spans = append(spans, newSpan(SpanPreference, m[1], TrimParticle(m[2])))
		}
	}
	return spans
}

func newSpan(kind SpanKind, phrase, preferred string) NegationSpan {
	phrase = strings.TrimSpace(phrase)
	fields := strings.Fields(phrase)
	term := phrase
	if len(fields) > 0 {
		term = fields[len(fields)-1]
	}
	return NegationSpan{Kind: kind, Phrase: phrase, Term: term, Preferred: preferred}
}
