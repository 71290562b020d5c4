// Package engine is the entry point of the keyword scoring pipeline:
// normalize, score every category, aggregate and summarize.
// It performs no I/O and holds no mutable state, so one Engine serves concurrent callers
package engine

import (
	"context"

	"cictt/internal/core/aggregate"
	"cictt/internal/core/editor"
	"cictt/internal/core/hazard"
	"cictt/internal/core/matcher"
	"cictt/internal/core/normalize"
	"cictt/internal/core/scorer"
	"cictt/internal/core/taxonomy"
)

// Analyzer produces an AnalysisResult for raw text. The keyword engine and the
// model-backed client both satisfy it
type Analyzer interface {
	Analyze(ctx context.Context, text string) (hazard.AnalysisResult, error)
}

// Engine scores text against a taxonomy
type Engine struct {
	tax *taxonomy.Taxonomy
}

// New builds an Engine over tax; nil means taxonomy.Default()
func New(tax *taxonomy.Taxonomy) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Engine{tax: tax}
}

// Taxonomy exposes the catalog the engine scores against
func (e *Engine) Taxonomy() *taxonomy.Taxonomy { return e.tax }

// Empty is the result for blank input
func (e *Engine) Empty() hazard.AnalysisResult {
	return hazard.AnalysisResult{
		Summary:          aggregate.NoText,
		OverallRiskScore: 0,
		OverallRiskLevel: hazard.RiskLow,
		Categories:       []hazard.CategoryResult{},
		DetectedCount:    0,
		TotalCategories:  e.tax.Len(),
	}
}

// Analyze scores text against every category.
// The result lists every category in taxonomy order; the overall score and summary
// cover the categories that scored above zero
func (e *Engine) Analyze(text string) hazard.AnalysisResult {
	norm := normalize.Text(text)
	if norm == "" {
		return e.Empty()
	}

	doc := matcher.NewDoc(norm)
	all := make([]hazard.CategoryResult, 0, e.tax.Len())
	e.tax.Each(func(_ int, c taxonomy.Category) {
		all = append(all, scorer.ScoreDoc(doc, c))
	})

	detected := make([]hazard.CategoryResult, 0, len(all))
	for _, c := range all {
		if c.Score > 0 {
			detected = append(detected, c)
		}
	}
	overall := aggregate.Aggregate(detected)

	return hazard.AnalysisResult{
		Summary:          aggregate.Summarize(detected),
		OverallRiskScore: overall.Score,
		OverallRiskLevel: overall.Level,
		Categories:       all,
		DetectedCount:    len(detected),
		TotalCategories:  e.tax.Len(),
	}
}

// Recalculate re-derives the overall score of an edited set
func (e *Engine) Recalculate(set []hazard.CategoryResult) aggregate.Overall {
	return aggregate.Aggregate(set)
}

// ListCategories returns every category in taxonomy order
func (e *Engine) ListCategories() []taxonomy.Category { return e.tax.Categories() }

// ListGroups returns group labels in taxonomy order
func (e *Engine) ListGroups() []string { return e.tax.Groups() }

// GetCategory looks up one category
func (e *Engine) GetCategory(code string) (taxonomy.Category, bool) { return e.tax.Get(code) }

// IsValidCode reports whether code is in the taxonomy
func (e *Engine) IsValidCode(code string) bool { return e.tax.IsValid(code) }

// ByGroup returns the categories of one group
func (e *Engine) ByGroup(group string) []taxonomy.Category { return e.tax.ByGroup(group) }

// Search finds categories by keyword substring with weight above threshold
func (e *Engine) Search(keyword string, threshold int) []taxonomy.SearchHit {
	return e.tax.Search(keyword, threshold)
}

// CreateManual returns a fresh manual entry for code
func (e *Engine) CreateManual(code string) (hazard.CategoryResult, bool) {
	c, ok := e.tax.Get(code)
	if !ok {
		return hazard.CategoryResult{}, false
	}
	return scorer.Empty(c), true
}

// Keyword adapts an Engine to Analyzer
type Keyword struct {
	*Engine
}

// NewKeyword wraps e as an Analyzer
func NewKeyword(e *Engine) Keyword { return Keyword{Engine: e} }

// Analyze honors an already-cancelled context, otherwise never fails
func (k Keyword) Analyze(ctx context.Context, text string) (hazard.AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return hazard.AnalysisResult{}, err
	}
	return k.Engine.Analyze(text), nil
}

var _ Analyzer = Keyword{}
var _ editor.Catalog = (*taxonomy.Taxonomy)(nil)
