package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"cictt/internal/core/aggregate"
	"cictt/internal/core/engine"
	"cictt/internal/core/hazard"
	"cictt/internal/core/scorer"
	"cictt/internal/core/taxonomy"
	"cictt/internal/platform/logger"
)

// reply is the JSON object the prompt asks for
type reply struct {
	Summary          string          `json:"summary"`
	OverallRiskScore *float64        `json:"overallRiskScore"`
	OverallRiskLevel string          `json:"overallRiskLevel"`
	Categories       []replyCategory `json:"categories"`
	Recommendations  []string        `json:"recommendations"`
}

type replyCategory struct {
	Code      string   `json:"code"`
	Score     float64  `json:"score"`
	RiskLevel string   `json:"riskLevel"`
	Factors   []string `json:"factors"`
}

// decodeResult maps model output onto the taxonomy. Scores are clamped to 0..100
// and levels re-derived from them, so a reply that disagrees with the thresholds
// cannot leak through. Unknown codes are dropped; categories the model left out
// score 0
func decodeResult(content string, eng *engine.Engine) (hazard.AnalysisResult, error) {
	var rp reply
	dec := json.NewDecoder(strings.NewReader(stripFence(content)))
	if err := dec.Decode(&rp); err != nil {
		return hazard.AnalysisResult{}, fmt.Errorf("decode model reply: %w", err)
	}
	if rp.OverallRiskScore == nil {
		return hazard.AnalysisResult{}, fmt.Errorf("model reply has no overallRiskScore")
	}
	if _, err := hazard.ParseLevel(rp.OverallRiskLevel); err != nil {
		return hazard.AnalysisResult{}, fmt.Errorf("model reply: %w", err)
	}

	tax := eng.Taxonomy()
	byCode := make(map[string]replyCategory, len(rp.Categories))
	for _, rc := range rp.Categories {
		code := strings.ToUpper(strings.TrimSpace(rc.Code))
		if !tax.IsValid(code) {
			logger.Named("llm").Warn().Str("code", rc.Code).Msg("model returned unknown category, dropped")
			continue
		}
		if rc.RiskLevel != "" {
			if _, err := hazard.ParseLevel(rc.RiskLevel); err != nil {
				return hazard.AnalysisResult{}, fmt.Errorf("model reply: %s: %w", code, err)
			}
		}
		byCode[code] = rc
	}

	cats := make([]hazard.CategoryResult, 0, tax.Len())
	detected := make([]hazard.CategoryResult, 0, len(byCode))
	tax.Each(func(_ int, c taxonomy.Category) {
		cr := scorer.Empty(c)
		cr.IsManuallyAdded = false
		if rc, ok := byCode[c.Code]; ok {
			cr.Score = clamp(rc.Score)
			cr.RiskLevel = hazard.LevelFor(cr.Score)
			for _, f := range rc.Factors {
				if f = strings.TrimSpace(f); f != "" {
					cr.Factors = append(cr.Factors, f)
				}
			}
		}
		cats = append(cats, cr)
		if cr.Score > 0 {
			detected = append(detected, cr)
		}
	})

	overall := clamp(*rp.OverallRiskScore)
	summary := strings.TrimSpace(rp.Summary)
	if summary == "" {
		summary = aggregate.Summarize(detected)
	}
	return hazard.AnalysisResult{
		Summary:          summary,
		OverallRiskScore: overall,
		OverallRiskLevel: hazard.LevelFor(overall),
		Categories:       cats,
		DetectedCount:    len(detected),
		TotalCategories:  tax.Len(),
		Recommendations:  rp.Recommendations,
	}, nil
}

func clamp(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return hazard.ClampScore(hazard.Round(math.Max(-1, math.Min(101, f))))
}

// stripFence removes a ```json ... ``` wrapper some models add despite the prompt
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
