package engine

import (
	"cictt/internal/core/editor"
	"cictt/internal/core/hazard"
)

// Edits below take a full result, apply one editor operation and re-aggregate.
// Summary and DetectedCount keep their detection-time values. ok is false when
// the editor rejected the change; the input result is returned untouched then

// Apply swaps in set and recomputes the overall score and level
func (e *Engine) Apply(r hazard.AnalysisResult, set []hazard.CategoryResult) hazard.AnalysisResult {
	out := r.Clone()
	out.Categories = set
	ov := e.Recalculate(set)
	out.OverallRiskScore = ov.Score
	out.OverallRiskLevel = ov.Level
	return out
}

func (e *Engine) edit(r hazard.AnalysisResult, set []hazard.CategoryResult, ok bool) (hazard.AnalysisResult, bool) {
	if !ok {
		return r, false
	}
	return e.Apply(r, set), true
}

// Toggle flips one category on or off
func (e *Engine) Toggle(r hazard.AnalysisResult, code string) (hazard.AnalysisResult, bool) {
	set, ok := editor.ToggleEnabled(r.Categories, code)
	return e.edit(r, set, ok)
}

// Enable sets one category's enabled flag
func (e *Engine) Enable(r hazard.AnalysisResult, code string, on bool) (hazard.AnalysisResult, bool) {
	set, ok := editor.SetEnabled(r.Categories, code, on)
	return e.edit(r, set, ok)
}

// Weight sets one category's user weight. w must already be in range
func (e *Engine) Weight(r hazard.AnalysisResult, code string, w float64) (hazard.AnalysisResult, bool) {
	set, ok := editor.SetWeight(r.Categories, code, w)
	return e.edit(r, set, ok)
}

// AddManual appends a manual entry for code
func (e *Engine) AddManual(r hazard.AnalysisResult, code string) (hazard.AnalysisResult, bool) {
	set, ok := editor.AddManual(r.Categories, code, e.tax)
	return e.edit(r, set, ok)
}

// RemoveManual removes a manual entry for code
func (e *Engine) RemoveManual(r hazard.AnalysisResult, code string) (hazard.AnalysisResult, bool) {
	set, ok := editor.RemoveManual(r.Categories, code)
	return e.edit(r, set, ok)
}
