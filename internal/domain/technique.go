package domain

// TechniqueRecord is one immutable catalog entry. Name is the unique key.
type TechniqueRecord struct {
	Name         string         `yaml:"name" json:"name"`
	Category     Category       `yaml:"category" json:"category"`
	Difficulty   int            `yaml:"difficulty" json:"difficulty"`
	SubType      SubmissionType `yaml:"type,omitempty" json:"sub_type,omitempty"`
	Aliases      []string       `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Descriptions []string       `yaml:"descriptions" json:"descriptions"`
	Keywords     []string       `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// HasKeyword reports whether kw is one of the record's explicit keyword tags.
func (t TechniqueRecord) HasKeyword(kw string) bool {
	for _, k := range t.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Match builds an unscored match view of the record.
func (t TechniqueRecord) Match(score int) TechniqueMatch {
	return TechniqueMatch{
		Name:       t.Name,
		Category:   t.Category,
		Difficulty: t.Difficulty,
		SubType:    t.SubType,
		Score:      score,
	}
}
