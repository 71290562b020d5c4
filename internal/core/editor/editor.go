// Package editor applies user edits to a CategoryResult set.
// Every operation returns a fresh slice and leaves its input untouched, so a prior
// snapshot stays valid for concurrent readers
package editor

import (
	"cictt/internal/core/hazard"
	"cictt/internal/core/scorer"
	"cictt/internal/core/taxonomy"
)

// Catalog resolves category codes
type Catalog interface {
	Get(code string) (taxonomy.Category, bool)
}

func indexOf(set []hazard.CategoryResult, code string) int {
	for i := range set {
		if set[i].Code == code {
			return i
		}
	}
	return -1
}

// Contains reports whether code is present in set
func Contains(set []hazard.CategoryResult, code string) bool {
	return indexOf(set, code) >= 0
}

// update copies set and applies fn to the entry for code
func update(set []hazard.CategoryResult, code string, fn func(*hazard.CategoryResult)) ([]hazard.CategoryResult, bool) {
	i := indexOf(set, code)
	if i < 0 {
		return set, false
	}
	out := hazard.CloneSet(set)
	fn(&out[i])
	return out, true
}

// ToggleEnabled flips IsEnabled for code. ok is false when code is absent
func ToggleEnabled(set []hazard.CategoryResult, code string) ([]hazard.CategoryResult, bool) {
	return update(set, code, func(c *hazard.CategoryResult) { c.IsEnabled = !c.IsEnabled })
}

// SetEnabled forces IsEnabled for code
func SetEnabled(set []hazard.CategoryResult, code string, enabled bool) ([]hazard.CategoryResult, bool) {
	return update(set, code, func(c *hazard.CategoryResult) { c.IsEnabled = enabled })
}

// SetWeight sets UserWeight for code. Callers keep w within
// hazard.MinUserWeight..hazard.MaxUserWeight
func SetWeight(set []hazard.CategoryResult, code string, w float64) ([]hazard.CategoryResult, bool) {
	return update(set, code, func(c *hazard.CategoryResult) { c.UserWeight = w })
}

// AddManual appends a zero-score manual entry for code. ok is false when the code
// is unknown to cat or already present in set
func AddManual(set []hazard.CategoryResult, code string, cat Catalog) ([]hazard.CategoryResult, bool) {
	c, known := cat.Get(code)
	if !known || Contains(set, code) {
		return set, false
	}
	out := make([]hazard.CategoryResult, 0, len(set)+1)
	out = append(out, hazard.CloneSet(set)...)
	return append(out, scorer.Empty(c)), true
}

// RemoveManual drops the entry for code if it was manually added.
// Detection entries are never removed
func RemoveManual(set []hazard.CategoryResult, code string) ([]hazard.CategoryResult, bool) {
	i := indexOf(set, code)
	if i < 0 || !set[i].IsManuallyAdded {
		return set, false
	}
	out := make([]hazard.CategoryResult, 0, len(set)-1)
	for j, c := range set {
		if j != i {
			out = append(out, c.Clone())
		}
	}
	return out, true
}
