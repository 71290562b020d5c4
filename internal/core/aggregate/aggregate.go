// Package aggregate folds a CategoryResult set into an overall score and a narrative summary.
// Nothing here mutates its input
package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"cictt/internal/core/hazard"
)

const (
	// NoHazards is the summary when no enabled category scored
	NoHazards = "No significant hazards detected in the provided text."
	// NoText is the summary for empty input
	NoText = "No text provided for analysis."
	// TopPerGroup caps how many categories a summary segment names
	TopPerGroup = 3
)

// Overall is the aggregate score and level
type Overall struct {
	Score int              `json:"score"`
	Level hazard.RiskLevel `json:"level"`
}

// Aggregate is the user-weighted mean of enabled category scores.
// An empty enabled set, or one whose weights sum to zero, yields 0/Low
func Aggregate(set []hazard.CategoryResult) Overall {
	var num, den float64
	for _, c := range set {
		if !c.IsEnabled {
			continue
		}
		num += float64(c.Score) * c.UserWeight
		den += c.UserWeight
	}
	if den <= 0 {
		return Overall{Score: 0, Level: hazard.RiskLow}
	}
	s := hazard.ClampScore(hazard.Round(num / den))
	return Overall{Score: s, Level: hazard.LevelFor(s)}
}

// Detected counts entries with a positive score
func Detected(set []hazard.CategoryResult) int {
	n := 0
	for _, c := range set {
		if c.Score > 0 {
			n++
		}
	}
	return n
}

// Segment is one group line of the summary
type Segment struct {
	Group   string   `json:"group"`
	Names   []string `json:"names"`
	Average int      `json:"average"`
}

func (s Segment) String() string {
	return fmt.Sprintf("%s hazards identified (%s): %d/100 risk score", s.Group, strings.Join(s.Names, ", "), s.Average)
}

// Segments groups enabled scoring categories by group label in ascending order and
// keeps the top scorers of each. Ties keep set order
func Segments(set []hazard.CategoryResult) []Segment {
	byGroup := map[string][]hazard.CategoryResult{}
	var groups []string
	for _, c := range set {
		if !c.IsEnabled || c.Score <= 0 {
			continue
		}
		if _, ok := byGroup[c.Group]; !ok {
			groups = append(groups, c.Group)
		}
		byGroup[c.Group] = append(byGroup[c.Group], c)
	}
	sort.Strings(groups)

	out := make([]Segment, 0, len(groups))
	for _, g := range groups {
		members := byGroup[g]
		sort.SliceStable(members, func(i, j int) bool { return members[i].Score > members[j].Score })
		if len(members) > TopPerGroup {
			members = members[:TopPerGroup]
		}
		seg := Segment{Group: g, Names: make([]string, len(members))}
		sum := 0
		for i, c := range members {
			seg.Names[i] = c.Name
			sum += c.Score
		}
		seg.Average = hazard.Round(float64(sum) / float64(len(members)))
		out = append(out, seg)
	}
	return out
}

// Summarize renders Segments as one sentence list
func Summarize(set []hazard.CategoryResult) string {
	segs := Segments(set)
	if len(segs) == 0 {
		return NoHazards
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ") + "."
}
