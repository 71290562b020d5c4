package domain

import (
	"context"

	"cictt/internal/core/aggregate"
	"cictt/internal/core/hazard"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (hazard.AnalysisResult, error)
	Recalculate(ctx context.Context, in RecalculateInput) (aggregate.Overall, error)
	Toggle(ctx context.Context, in EditInput) (hazard.AnalysisResult, error)
	Weight(ctx context.Context, in WeightInput) (hazard.AnalysisResult, error)
	AddManual(ctx context.Context, in EditInput) (hazard.AnalysisResult, error)
	RemoveManual(ctx context.Context, in EditInput) (hazard.AnalysisResult, error)
}

// EnginePort describes the analyzer behind the module, for the meta endpoints
type EnginePort interface {
	Backend() string
	TaxonomyVersion() int
	Categories() int
	Groups() int
}
