package domain

// TechniqueMatch is a scored reference to a catalog technique.
type TechniqueMatch struct {
	Name       string         `json:"name"`
	Category   Category       `json:"category"`
	Difficulty int            `json:"difficulty"`
	SubType    SubmissionType `json:"sub_type,omitempty"`
	Score      int            `json:"score"`
	// Mastery is set only when the caller supplied history weights.
	Mastery *float64 `json:"mastery,omitempty"`
}

// Preference records a "<avoid>보다는 <prefer>" span.
type Preference struct {
	Avoid  string `json:"avoid"`
	Prefer string `json:"prefer"`
}

// AnalysisResult is the structured reading of one training request.
// Results may be shared through the cache; treat them as read-only.
type AnalysisResult struct {
	Text           string `json:"text"`
	NormalizedText string `json:"normalized_text"`

	Intent               Intent               `json:"intent"`
	IntentConfidence     float64              `json:"intent_confidence"`
	DetectedIntents      []Intent             `json:"detected_intents"`
	DifficultyPreference DifficultyPreference `json:"difficulty_preference"`
	DifficultyCue        DifficultyCue        `json:"difficulty_cue"`

	BodyParts      []string  `json:"body_parts"`
	Actions        []string  `json:"actions"`
	Intensity      Intensity `json:"intensity"`
	IntensityScore float64   `json:"intensity_score"`
	Emotions       []Emotion `json:"emotions"`
	IsBeginner     bool      `json:"is_beginner"`

	ExcludedTechniques []string     `json:"excluded_techniques"`
	ExcludedCategories []Category   `json:"excluded_categories"`
	FreeTextExclusions []string     `json:"free_text_exclusions"`
	Preferences        []Preference `json:"preferences"`

	PrimaryMatches      []TechniqueMatch `json:"primary_matches"`
	RelatedMatches      []TechniqueMatch `json:"related_matches"`
	TakedownSuggestions []TechniqueMatch `json:"takedown_suggestions"`

	Confidence      float64 `json:"confidence"`
	MatchConfidence float64 `json:"match_confidence"`
}

// AllMatches returns primary then related matches.
func (r *AnalysisResult) AllMatches() []TechniqueMatch {
	out := make([]TechniqueMatch, 0, len(r.PrimaryMatches)+len(r.RelatedMatches))
	out = append(out, r.PrimaryMatches...)
	return append(out, r.RelatedMatches...)
}

// Excludes reports whether the named technique was excluded.
func (r *AnalysisResult) Excludes(name string) bool {
	for _, n := range r.ExcludedTechniques {
		if n == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so per-caller overlays never touch a cached result.
func (r *AnalysisResult) Clone() *AnalysisResult {
	c := *r
	c.DetectedIntents = cloneSlice(r.DetectedIntents)
	c.BodyParts = cloneSlice(r.BodyParts)
	c.Actions = cloneSlice(r.Actions)
	c.Emotions = cloneSlice(r.Emotions)
	c.ExcludedTechniques = cloneSlice(r.ExcludedTechniques)
	c.ExcludedCategories = cloneSlice(r.ExcludedCategories)
	c.FreeTextExclusions = cloneSlice(r.FreeTextExclusions)
	c.Preferences = cloneSlice(r.Preferences)
	c.PrimaryMatches = cloneMatches(r.PrimaryMatches)
	c.RelatedMatches = cloneMatches(r.RelatedMatches)
	c.TakedownSuggestions = cloneMatches(r.TakedownSuggestions)
	return &c
}

// cloneSlice keeps nil as nil and empty as empty, so JSON shapes survive.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneMatches(in []TechniqueMatch) []TechniqueMatch {
	if in == nil {
		return nil
	}
	out := make([]TechniqueMatch, len(in))
	for i, m := range in {
		out[i] = m
		if m.Mastery != nil {
			v := *m.Mastery
			out[i].Mastery = &v
		}
	}
	return out
}
