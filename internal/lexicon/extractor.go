package lexicon

import (
	"strings"

	"github.com/alexanderramin/grapple/internal/domain"
)

// Features is the plain feature bundle produced for one request.
type Features struct {
	Raw        string
	Normalized string
	Tokens     []string

	BodyParts []string
	Actions   []string

	DifficultyCue      domain.DifficultyCue
	Intensity          domain.Intensity
	IntensityModifiers []string

	Emotions    []domain.Emotion
	IsBeginner  bool
	TakedownCue bool

	Negations []NegationSpan
}

// HasBodyPart reports whether tag was extracted.
func (f Features) HasBodyPart(tag string) bool { return contains(f.BodyParts, tag) }

// HasAction reports whether tag was extracted.
func (f Features) HasAction(tag string) bool { return contains(f.Actions, tag) }

// Extractor normalizes text and pulls containment-based features out of it.
// It holds no mutable state and may be shared.
type Extractor struct {
	replacer *strings.Replacer
}

func NewExtractor() *Extractor {
	return NewExtractorWithRules(DefaultRules)
}

// NewExtractorWithRules uses a custom ordered synonym table.
func NewExtractorWithRules(rules []Rule) *Extractor {
	return &Extractor{replacer: buildReplacer(rules)}
}

// Normalize lowercases, trims, collapses whitespace and applies the synonym rules.
func (e *Extractor) Normalize(text string) string {
	collapsed := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	return e.replacer.Replace(collapsed)
}

func (e *Extractor) Extract(text string) Features {
	norm := e.Normalize(text)
	f := Features{
		Raw:           text,
		Normalized:    norm,
		Tokens:        strings.Fields(norm),
		BodyParts:     matchTags(norm, bodyPartTags),
		Actions:       matchTags(norm, actionTags),
		DifficultyCue: domain.CueNormal,
		Intensity:     domain.IntensityMedium,
		IsBeginner:    containsAny(norm, beginnerWords),
		TakedownCue:   containsAny(norm, takedownWords),
		Negations:     extractNegations(norm),
	}

	for _, dc := range difficultyCues {
		if containsAny(norm, dc.Words) {
			f.DifficultyCue = dc.Cue
			break
		}
	}

	for _, tier := range intensityTiers {
		var found []string
		for _, m := range tier.Modifiers {
			if strings.Contains(norm, m) {
				found = append(found, m)
			}
		}
		if len(found) > 0 {
			f.Intensity = tier.Level
			f.IntensityModifiers = found
			break
		}
	}

	for _, ec := range emotionCues {
		if containsAny(norm, ec.Words) {
			f.Emotions = append(f.Emotions, ec.Emotion)
		}
	}
	return f
}

func matchTags(text string, tags []Tag) []string {
	var out []string
	for _, t := range tags {
		if containsAny(text, t.Synonyms) {
			out = append(out, t.Name)
		}
	}
	return out
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
