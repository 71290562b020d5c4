package llm

import (
	"fmt"
	"strings"

	"cictt/internal/core/taxonomy"
)

const promptHead = `You are an aviation safety analyst. Classify the occurrence report you are given
against the CICTT occurrence category taxonomy listed below.

For every category the report supports, give a hazard score from 0 (not present) to
100 (critical) and the phrases from the report that support it. Leave out categories
the report does not support. Give an overall score from 0 to 100, a short summary and
a few actionable recommendations.

Reply with one JSON object and nothing else:
{
  "summary": string,
  "overallRiskScore": number,
  "overallRiskLevel": "Low" | "Medium" | "High" | "Critical",
  "categories": [
    {"code": string, "score": number, "riskLevel": "Low" | "Medium" | "High" | "Critical",
     "factors": [string]}
  ],
  "recommendations": [string]
}

Levels: Critical is 80 and above, High 51 to 79, Medium 21 to 50, Low below 21.
Use only these category codes:
`

// systemPrompt lists every category as "CODE (Group): Name"
func systemPrompt(tax *taxonomy.Taxonomy) string {
	var b strings.Builder
	b.WriteString(promptHead)
	tax.Each(func(_ int, c taxonomy.Category) {
		fmt.Fprintf(&b, "- %s (%s): %s\n", c.Code, c.Group, c.Name)
	})
	return b.String()
}
