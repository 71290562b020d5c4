// Package taxonomy loads the embedded CICTT category table.
// Categories and their keyword vocabularies are read once and never mutated
package taxonomy

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed cictt.yaml
var embedded []byte

const (
	// MinWeight is the lowest keyword severity accepted in the table
	MinWeight = 1
	// MaxWeight is the highest keyword severity accepted in the table
	MaxWeight = 10
)

// Keyword is one weighted phrase of a category vocabulary
type Keyword struct {
	Term   string `json:"term"`
	Weight int    `json:"weight"`
}

// Keywords keeps declaration order from the YAML mapping
type Keywords []Keyword

// UnmarshalYAML decodes a mapping node pair by pair so order survives
func (k *Keywords) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("keywords: line %d: want mapping, got kind %d", n.Line, n.Kind)
	}
	out := make(Keywords, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var w int
		if err := n.Content[i+1].Decode(&w); err != nil {
			return fmt.Errorf("keywords: line %d: weight for %q: %w", n.Content[i+1].Line, n.Content[i].Value, err)
		}
		out = append(out, Keyword{Term: n.Content[i].Value, Weight: w})
	}
	*k = out
	return nil
}

// Category is one CICTT occurrence category
type Category struct {
	Code        string   `json:"code" yaml:"code"`
	Name        string   `json:"name" yaml:"name"`
	Group       string   `json:"group" yaml:"group"`
	Description string   `json:"description" yaml:"description"`
	Keywords    Keywords `json:"keywords" yaml:"keywords"`
}

// TotalWeight sums every keyword weight, matched or not
func (c Category) TotalWeight() int {
	total := 0
	for _, kw := range c.Keywords {
		total += kw.Weight
	}
	return total
}

type rawTable struct {
	Version    int        `yaml:"version"`
	Categories []Category `yaml:"categories"`
}

// Taxonomy is the read-only catalog. All accessors return copies
type Taxonomy struct {
	version    int
	categories []Category
	byCode     map[string]int
	groups     []string
}

// Load parses and validates the embedded table
func Load() (*Taxonomy, error) {
	return Parse(embedded)
}

// Parse builds a Taxonomy from YAML bytes in the embedded table format
func Parse(b []byte) (*Taxonomy, error) {
	var raw rawTable
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("taxonomy: parse: %w", err)
	}
	if raw.Version != 1 {
		return nil, fmt.Errorf("taxonomy: unsupported table version %d (want 1)", raw.Version)
	}
	if len(raw.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy: no categories")
	}

	t := &Taxonomy{
		version:    raw.Version,
		categories: make([]Category, 0, len(raw.Categories)),
		byCode:     make(map[string]int, len(raw.Categories)),
	}
	seenGroup := make(map[string]struct{}, 16)

	for _, c := range raw.Categories {
		c.Code = strings.TrimSpace(c.Code)
		if c.Code == "" {
			return nil, fmt.Errorf("taxonomy: category %q has no code", c.Name)
		}
		if _, dup := t.byCode[c.Code]; dup {
			return nil, fmt.Errorf("taxonomy: duplicate code %q", c.Code)
		}
		if len(c.Keywords) == 0 {
			return nil, fmt.Errorf("taxonomy: %s: empty keyword vocabulary", c.Code)
		}

		// terms are matched against lowercased text
		seenTerm := make(map[string]struct{}, len(c.Keywords))
		kws := make(Keywords, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			term := strings.ToLower(strings.TrimSpace(kw.Term))
			if term == "" {
				return nil, fmt.Errorf("taxonomy: %s: empty keyword", c.Code)
			}
			if _, dup := seenTerm[term]; dup {
				return nil, fmt.Errorf("taxonomy: %s: duplicate keyword %q", c.Code, term)
			}
			if kw.Weight < MinWeight || kw.Weight > MaxWeight {
				return nil, fmt.Errorf("taxonomy: %s: keyword %q weight %d outside %d..%d",
					c.Code, term, kw.Weight, MinWeight, MaxWeight)
			}
			seenTerm[term] = struct{}{}
			kws = append(kws, Keyword{Term: term, Weight: kw.Weight})
		}
		c.Keywords = kws

		t.byCode[c.Code] = len(t.categories)
		t.categories = append(t.categories, c)

		if _, ok := seenGroup[c.Group]; !ok {
			seenGroup[c.Group] = struct{}{}
			t.groups = append(t.groups, c.Group)
		}
	}
	return t, nil
}

var (
	defOnce sync.Once
	defTax  *Taxonomy
)

// Default returns the process-wide taxonomy built from the embedded table.
// The table ships with the binary, so a load failure is a build defect and panics
func Default() *Taxonomy {
	defOnce.Do(func() {
		t, err := Load()
		if err != nil {
			panic(err)
		}
		defTax = t
	})
	return defTax
}

// Version reports the table format version
func (t *Taxonomy) Version() int { return t.version }

// Len is the number of categories
func (t *Taxonomy) Len() int { return len(t.categories) }

// Categories returns every category in table order
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = c.clone()
	}
	return out
}

// Each calls fn for every category in table order without copying keyword slices.
// fn must not retain or modify c.Keywords
func (t *Taxonomy) Each(fn func(i int, c Category)) {
	for i, c := range t.categories {
		fn(i, c)
	}
}

// Get looks a category up by code
func (t *Taxonomy) Get(code string) (Category, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return Category{}, false
	}
	return t.categories[i].clone(), true
}

// Index returns the table position of code, or -1
func (t *Taxonomy) Index(code string) int {
	if i, ok := t.byCode[code]; ok {
		return i
	}
	return -1
}

// IsValid reports whether code names a category
func (t *Taxonomy) IsValid(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Groups returns the distinct group labels in order of first appearance
func (t *Taxonomy) Groups() []string {
	return append([]string(nil), t.groups...)
}

// ByGroup returns the categories of one group in table order
func (t *Taxonomy) ByGroup(group string) []Category {
	var out []Category
	for _, c := range t.categories {
		if c.Group == group {
			out = append(out, c.clone())
		}
	}
	return out
}

// SearchHit is a category whose vocabulary contains a searched keyword
type SearchHit struct {
	Category Category `json:"category"`
	Weight   int      `json:"weight"`
}

// Search finds categories with a term containing keyword (case-insensitive) and a
// weight above threshold. Each category appears once with its highest matching
// weight; results are ordered by weight desc, ties in table order
func (t *Taxonomy) Search(keyword string, threshold int) []SearchHit {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}
	var out []SearchHit
	for _, c := range t.categories {
		best := 0
		for _, kw := range c.Keywords {
			if kw.Weight > threshold && kw.Weight > best && strings.Contains(kw.Term, needle) {
				best = kw.Weight
			}
		}
		if best > 0 {
			out = append(out, SearchHit{Category: c.clone(), Weight: best})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out
}

func (c Category) clone() Category {
	c.Keywords = append(Keywords(nil), c.Keywords...)
	return c
}
