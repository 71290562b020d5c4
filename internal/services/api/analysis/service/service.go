// Package service contains the analysis workflows: scoring a report and applying
// category edits to a caller-held result
package service

import (
	"context"
	"time"

	"cictt/internal/core/aggregate"
	"cictt/internal/core/editor"
	"cictt/internal/core/engine"
	"cictt/internal/core/hazard"
	perr "cictt/internal/platform/errors"
	"cictt/internal/platform/logger"
	"cictt/internal/services/api/analysis/domain"
)

// Service defines the analysis service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analysis service. It keeps no state between calls; edits
// operate on the result the caller sends back
type Svc struct {
	eng     *engine.Engine
	an      engine.Analyzer
	backend string
}

// New constructs an analysis service
func New(eng *engine.Engine, an engine.Analyzer, backend string) *Svc {
	if eng == nil {
		panic("analysis.Service requires a non nil Engine")
	}
	if an == nil {
		panic("analysis.Service requires a non nil Analyzer")
	}
	return &Svc{eng: eng, an: an, backend: backend}
}

var _ Service = (*Svc)(nil)

// Analyze scores one report with the configured analyzer
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (hazard.AnalysisResult, error) {
	ctx = logger.WithAnalyzer(ctx, s.backend)
	start := time.Now()
	res, err := s.an.Analyze(ctx, in.Text)
	if err != nil {
		return hazard.AnalysisResult{}, err
	}
	logger.C(ctx).Debug().
		Int("chars", len(in.Text)).
		Int("detected", res.DetectedCount).
		Int("overall", res.OverallRiskScore).
		Str("level", string(res.OverallRiskLevel)).
		Dur("elapsed", time.Since(start)).
		Msg("analysis done")
	return res, nil
}

// Recalculate re-derives the overall score of an edited set
func (s *Svc) Recalculate(_ context.Context, in domain.RecalculateInput) (aggregate.Overall, error) {
	return s.eng.Recalculate(in.Categories), nil
}

// Toggle flips one category on or off
func (s *Svc) Toggle(_ context.Context, in domain.EditInput) (hazard.AnalysisResult, error) {
	out, ok := s.eng.Toggle(in.Result, in.Code)
	if !ok {
		return hazard.AnalysisResult{}, notInResult(in.Code)
	}
	return out, nil
}

// Weight sets one category's user weight
func (s *Svc) Weight(_ context.Context, in domain.WeightInput) (hazard.AnalysisResult, error) {
	out, ok := s.eng.Weight(in.Result, in.Code, hazard.ClampWeight(in.Weight))
	if !ok {
		return hazard.AnalysisResult{}, notInResult(in.Code)
	}
	return out, nil
}

// AddManual appends a manual entry; the code must exist and not be in the result yet
func (s *Svc) AddManual(_ context.Context, in domain.EditInput) (hazard.AnalysisResult, error) {
	if !s.eng.IsValidCode(in.Code) {
		return hazard.AnalysisResult{}, perr.WithField(perr.NotFoundf("unknown category code %s", in.Code), "code")
	}
	out, ok := s.eng.AddManual(in.Result, in.Code)
	if !ok {
		return hazard.AnalysisResult{}, perr.WithField(perr.Conflictf("category %s is already in the result", in.Code), "code")
	}
	return out, nil
}

// RemoveManual drops a manual entry. Detected categories cannot be removed, only
// disabled
func (s *Svc) RemoveManual(_ context.Context, in domain.EditInput) (hazard.AnalysisResult, error) {
	out, ok := s.eng.RemoveManual(in.Result, in.Code)
	if ok {
		return out, nil
	}
	if editor.Contains(in.Result.Categories, in.Code) {
		return hazard.AnalysisResult{}, perr.WithField(perr.Conflictf("category %s was detected, disable it instead", in.Code), "code")
	}
	return hazard.AnalysisResult{}, notInResult(in.Code)
}

func notInResult(code string) error {
	return perr.WithField(perr.NotFoundf("category %s is not in the result", code), "code")
}
