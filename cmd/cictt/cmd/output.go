package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cictt/internal/core/hazard"
	"cictt/internal/core/taxonomy"
)

// printResult renders the overall line, the summary, then every category that
// scored or was added by hand
func printResult(w io.Writer, res hazard.AnalysisResult) {
	fmt.Fprintf(w, "Overall: %d (%s)  detected %d of %d\n",
		res.OverallRiskScore, res.OverallRiskLevel, res.DetectedCount, res.TotalCategories)
	fmt.Fprintln(w, res.Summary)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := 0
	for _, c := range res.Categories {
		if c.Score == 0 && !c.IsManuallyAdded {
			continue
		}
		if rows == 0 {
			fmt.Fprintln(tw, "\nCODE\tSCORE\tLEVEL\tWEIGHT\tNAME\tKEYWORDS")
		}
		rows++
		name := c.Name
		if !c.IsEnabled {
			name += " (disabled)"
		}
		if c.IsManuallyAdded {
			name += " (manual)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2g\t%s\t%s\n", c.Code, c.Score, c.RiskLevel, c.UserWeight, name, cues(c))
	}
	_ = tw.Flush()

	for _, r := range res.Recommendations {
		fmt.Fprintf(w, "- %s\n", r)
	}
}

// cues lists matched keywords, or the model's factors when there are none
func cues(c hazard.CategoryResult) string {
	if len(c.MatchedKeywords) == 0 {
		return strings.Join(c.Factors, ", ")
	}
	parts := make([]string, 0, len(c.MatchedKeywords))
	for _, k := range c.MatchedKeywords {
		if k.Count > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", k.Word, k.Count))
			continue
		}
		parts = append(parts, k.Word)
	}
	return strings.Join(parts, ", ")
}

func printCategories(w io.Writer, cats []taxonomy.Category) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range cats {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Code, c.Group, c.Name)
	}
	_ = tw.Flush()
}

func printHits(w io.Writer, hits []taxonomy.SearchHit) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, h := range hits {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", h.Category.Code, h.Weight, h.Category.Name)
	}
	_ = tw.Flush()
}
