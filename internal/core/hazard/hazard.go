// Package hazard holds the result types shared by the scoring engine, the editor and
// the transports, plus the system-wide risk thresholds
package hazard

import (
	"fmt"
	"math"
)

// RiskLevel is a coarse bucketing of a 0..100 score
type RiskLevel string

const (
	// RiskLow is any score below 21
	RiskLow RiskLevel = "Low"
	// RiskMedium is 21..50
	RiskMedium RiskLevel = "Medium"
	// RiskHigh is 51..79
	RiskHigh RiskLevel = "High"
	// RiskCritical is 80 and above
	RiskCritical RiskLevel = "Critical"
)

// Score thresholds, inclusive lower bounds
const (
	ThresholdCritical = 80
	ThresholdHigh     = 51
	ThresholdMedium   = 21
)

// User weight bounds for CategoryResult.UserWeight
const (
	MinUserWeight     = 0.5
	MaxUserWeight     = 2.0
	DefaultUserWeight = 1.0
)

// LevelFor maps a score to its risk level. Used everywhere a score is classified
func LevelFor(score int) RiskLevel {
	switch {
	case score >= ThresholdCritical:
		return RiskCritical
	case score >= ThresholdHigh:
		return RiskHigh
	case score >= ThresholdMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ParseLevel accepts the exact level labels
func ParseLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return RiskLevel(s), nil
	}
	return "", fmt.Errorf("hazard: unknown risk level %q", s)
}

// Round rounds half away from zero (67.5 -> 68). Scores are never negative, so this
// agrees with round-half-up
func Round(x float64) int {
	return int(math.Round(x))
}

// ClampScore bounds a score to 0..100
func ClampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// ClampWeight bounds a user weight to MinUserWeight..MaxUserWeight
func ClampWeight(w float64) float64 {
	if math.IsNaN(w) {
		return DefaultUserWeight
	}
	return math.Max(MinUserWeight, math.Min(MaxUserWeight, w))
}

// MatchedKeyword is a taxonomy phrase found in the text
type MatchedKeyword struct {
	Word   string `json:"word"`
	Count  int    `json:"count"`
	Weight int    `json:"weight"`
}

// CategoryResult is the per-category outcome of one analysis.
// Code, Name, Group, Score, RiskLevel, MatchedKeywords, Factors and IsManuallyAdded
// are fixed at creation; only UserWeight and IsEnabled change afterwards.
// MatchedKeywords holds taxonomy phrases only. Factors are free-text contributing
// factors from the model-backed analyzer; the keyword engine leaves them nil
type CategoryResult struct {
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Group           string           `json:"group"`
	Score           int              `json:"score"`
	RiskLevel       RiskLevel        `json:"riskLevel"`
	MatchedKeywords []MatchedKeyword `json:"matchedKeywords"`
	Factors         []string         `json:"factors,omitempty"`
	UserWeight      float64          `json:"userWeight"`
	IsManuallyAdded bool             `json:"isManuallyAdded"`
	IsEnabled       bool             `json:"isEnabled"`
}

// Clone returns a deep copy. An empty keyword list stays empty, not nil, so it
// still serializes as []
func (c CategoryResult) Clone() CategoryResult {
	if c.MatchedKeywords != nil {
		c.MatchedKeywords = append(make([]MatchedKeyword, 0, len(c.MatchedKeywords)), c.MatchedKeywords...)
	}
	if c.Factors != nil {
		c.Factors = append(make([]string, 0, len(c.Factors)), c.Factors...)
	}
	return c
}

// AnalysisResult is the full report for one document.
// Recommendations is only filled by the model-backed analyzer; the keyword engine
// leaves it nil and it is omitted from JSON
type AnalysisResult struct {
	Summary          string           `json:"summary"`
	OverallRiskScore int              `json:"overallRiskScore"`
	OverallRiskLevel RiskLevel        `json:"overallRiskLevel"`
	Categories       []CategoryResult `json:"categories"`
	DetectedCount    int              `json:"detectedCount"`
	TotalCategories  int              `json:"totalCategories"`
	Recommendations  []string         `json:"recommendations,omitempty"`
}

// Clone returns a deep copy
func (r AnalysisResult) Clone() AnalysisResult {
	r.Categories = CloneSet(r.Categories)
	if r.Recommendations != nil {
		r.Recommendations = append(make([]string, 0, len(r.Recommendations)), r.Recommendations...)
	}
	return r
}

// CloneSet deep-copies a result set. A nil set stays nil
func CloneSet(in []CategoryResult) []CategoryResult {
	if in == nil {
		return nil
	}
	out := make([]CategoryResult, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
