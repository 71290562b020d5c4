// Package domain holds DTOs for the analysis http and service contracts
package domain

import "cictt/internal/core/hazard"

// AnalyzeInput is one report to score. Blank text is a normal request and yields
// the empty result
type AnalyzeInput struct {
	Text string `json:"text" example:"Severe icing on approach, then a bird strike on the go-around."`
}

// RecalculateInput is a caller-held category set after edits
type RecalculateInput struct {
	Categories []hazard.CategoryResult `json:"categories" validate:"required"`
}

// EditInput names one category of a caller-held result
type EditInput struct {
	Result hazard.AnalysisResult `json:"result"`
	Code   string                `json:"code" validate:"required,catcode" example:"ICE"`
}

// WeightInput sets the user weight of one category
type WeightInput struct {
	Result hazard.AnalysisResult `json:"result"`
	Code   string                `json:"code" validate:"required,catcode" example:"ICE"`
	Weight float64               `json:"weight" validate:"required,min=0.5,max=2" example:"1.5"`
}
