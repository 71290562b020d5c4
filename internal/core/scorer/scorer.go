// Package scorer turns one taxonomy category and a normalized text into a CategoryResult
package scorer

import (
	"math"

	"cictt/internal/core/hazard"
	"cictt/internal/core/matcher"
	"cictt/internal/core/taxonomy"
)

const (
	// MaxRepeat caps how many occurrences of one phrase count toward the matched weight
	MaxRepeat = 3
	// BonusPerKeyword is added per distinct matched phrase
	BonusPerKeyword = 2
	// MaxBonus caps the breadth bonus
	MaxBonus = 20
)

// Score scores text (already normalized) against c
func Score(text string, c taxonomy.Category) hazard.CategoryResult {
	return ScoreDoc(matcher.NewDoc(text), c)
}

// ScoreDoc is Score over a prepared document so tokens are shared across categories
func ScoreDoc(doc *matcher.Doc, c taxonomy.Category) hazard.CategoryResult {
	var (
		total   int
		matched int
		hits    = make([]hazard.MatchedKeyword, 0, 4)
	)
	for _, kw := range c.Keywords {
		total += kw.Weight
		n := doc.Count(matcher.Lookup(kw.Term))
		if n == 0 {
			continue
		}
		hits = append(hits, hazard.MatchedKeyword{Word: kw.Term, Count: n, Weight: kw.Weight})
		matched += kw.Weight * min(n, MaxRepeat)
	}

	score := hazard.ClampScore(hazard.Round(Raw(matched, total, len(hits))))
	return hazard.CategoryResult{
		Code:            c.Code,
		Name:            c.Name,
		Group:           c.Group,
		Score:           score,
		RiskLevel:       hazard.LevelFor(score),
		MatchedKeywords: hits,
		UserWeight:      hazard.DefaultUserWeight,
		IsEnabled:       true,
	}
}

// Raw is the unrounded score: coverage percentage plus breadth bonus, capped at 100
func Raw(matchedWeight, totalWeight, distinct int) float64 {
	base := 0.0
	if totalWeight > 0 {
		base = float64(matchedWeight) / float64(totalWeight) * 100
	}
	bonus := float64(min(MaxBonus, distinct*BonusPerKeyword))
	return math.Min(100, base+bonus)
}

// Empty is the zero result used for manually added categories
func Empty(c taxonomy.Category) hazard.CategoryResult {
	return hazard.CategoryResult{
		Code:            c.Code,
		Name:            c.Name,
		Group:           c.Group,
		Score:           0,
		RiskLevel:       hazard.RiskLow,
		MatchedKeywords: []hazard.MatchedKeyword{},
		UserWeight:      hazard.DefaultUserWeight,
		IsManuallyAdded: true,
		IsEnabled:       true,
	}
}
