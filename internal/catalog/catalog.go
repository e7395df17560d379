package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/grapple/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed techniques.yaml
var defaultCatalog []byte

// MinTokenRunes is the shortest description/alias token that enters the keyword index.
const MinTokenRunes = 2

type file struct {
	Techniques []domain.TechniqueRecord `yaml:"techniques"`
}

// Catalog is an immutable technique collection plus its derived indexes.
// It is safe for concurrent readers.
type Catalog struct {
	records    []domain.TechniqueRecord
	byName     map[string]int
	byAlias    map[string]string
	keywords   map[string][]string
	categories map[domain.Category][]string
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse builds a catalog from YAML of the form `techniques: [...]`.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing technique catalog: %w", err)
	}
	return New(f.Techniques)
}

// New validates the records and builds the indexes. Record order is kept
// and defines the iteration order every lookup returns.
func New(records []domain.TechniqueRecord) (*Catalog, error) {
	c := &Catalog{
		records:    make([]domain.TechniqueRecord, 0, len(records)),
		byName:     make(map[string]int, len(records)),
		byAlias:    make(map[string]string),
		keywords:   make(map[string][]string),
		categories: make(map[domain.Category][]string),
	}

	for _, r := range records {
		r.Name = strings.TrimSpace(r.Name)
		if err := validate(r); err != nil {
			return nil, err
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, fmt.Errorf("technique %q: duplicate name", r.Name)
		}
		c.byName[r.Name] = len(c.records)
		c.records = append(c.records, r)
	}

	for _, r := range c.records {
		c.categories[r.Category] = append(c.categories[r.Category], r.Name)
		for _, a := range r.Aliases {
			key := strings.ToLower(strings.TrimSpace(a))
			if key == "" {
				continue
			}
			if _, taken := c.byAlias[key]; !taken {
				c.byAlias[key] = r.Name
			}
			c.indexPhrase(key, r.Name)
		}
		for _, d := range r.Descriptions {
			c.indexPhrase(strings.ToLower(d), r.Name)
		}
		for _, k := range r.Keywords {
			c.addKeyword(strings.ToLower(strings.TrimSpace(k)), r.Name)
		}
	}
	return c, nil
}

func validate(r domain.TechniqueRecord) error {
	if r.Name == "" {
		return fmt.Errorf("technique with empty name")
	}
	if !r.Category.Valid() {
		return fmt.Errorf("technique %q: unknown category %q", r.Name, r.Category)
	}
	if r.Difficulty < domain.MinDifficulty || r.Difficulty > domain.MaxDifficulty {
		return fmt.Errorf("technique %q: difficulty %d outside %d-%d", r.Name, r.Difficulty, domain.MinDifficulty, domain.MaxDifficulty)
	}
	if !r.SubType.Valid() {
		return fmt.Errorf("technique %q: unknown type %q", r.Name, r.SubType)
	}
	if r.SubType != "" && r.Category != domain.CategorySubmission {
		return fmt.Errorf("technique %q: type is only allowed on submissions", r.Name)
	}
	return nil
}

func (c *Catalog) indexPhrase(phrase, name string) {
	for _, tok := range strings.Fields(phrase) {
		if utf8.RuneCountInString(tok) >= MinTokenRunes {
			c.addKeyword(tok, name)
		}
	}
}

func (c *Catalog) addKeyword(kw, name string) {
	if kw == "" {
		return
	}
	for _, n := range c.keywords[kw] {
		if n == name {
			return
		}
	}
	c.keywords[kw] = append(c.keywords[kw], name)
}

// Len returns the number of techniques.
func (c *Catalog) Len() int { return len(c.records) }

// All returns every record in catalog order. The slice is a copy.
func (c *Catalog) All() []domain.TechniqueRecord {
	out := make([]domain.TechniqueRecord, len(c.records))
	copy(out, c.records)
	return out
}

// ByExactName returns the record with exactly this name.
func (c *Catalog) ByExactName(name string) (domain.TechniqueRecord, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.TechniqueRecord{}, false
	}
	return c.records[i], true
}

// ByAlias resolves a lowercased alias to its technique name.
func (c *Catalog) ByAlias(alias string) (string, bool) {
	name, ok := c.byAlias[strings.ToLower(strings.TrimSpace(alias))]
	return name, ok
}

// Lookup resolves either a name or an alias.
func (c *Catalog) Lookup(s string) (domain.TechniqueRecord, bool) {
	s = strings.TrimSpace(s)
	if rec, ok := c.ByExactName(s); ok {
		return rec, true
	}
	if name, ok := c.ByAlias(s); ok {
		return c.ByExactName(name)
	}
	return domain.TechniqueRecord{}, false
}

// ByKeyword returns the names indexed under token, in catalog order.
func (c *Catalog) ByKeyword(token string) []string {
	return c.keywords[strings.ToLower(token)]
}

// ByCategory returns the names in a category, in catalog order.
func (c *Catalog) ByCategory(cat domain.Category) []string {
	return c.categories[cat]
}

// BySubType returns submission names of the given type, in catalog order.
func (c *Catalog) BySubType(t domain.SubmissionType) []string {
	var out []string
	for _, r := range c.records {
		if r.SubType == t && t != "" {
			out = append(out, r.Name)
		}
	}
	return out
}

// AllAliasesOf returns the surface forms fuzzy matching compares against:
// the name, the name without spaces, and every alias, lowercased and deduplicated.
func (c *Catalog) AllAliasesOf(name string) []string {
	rec, ok := c.ByExactName(name)
	if !ok {
		return nil
	}
	seen := make(map[string]bool, len(rec.Aliases)+2)
	var out []string
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	add(rec.Name)
	add(strings.ReplaceAll(rec.Name, " ", ""))
	for _, a := range rec.Aliases {
		add(a)
	}
	return out
}
