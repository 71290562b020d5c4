// Package http provides http transport for analysis
package http

import (
	stdhttp "net/http"

	"cictt/internal/modkit/httpkit"
	"cictt/internal/services/api/analysis/domain"
	svc "cictt/internal/services/api/analysis/service"
)

// Register mounts analysis endpoints on the given router. maxBody caps the
// report upload; edits carry a full result and share the cap
func Register(r httpkit.Router, s svc.Service, maxBody int64) {
	h := &handlers{svc: s}
	opt := httpkit.BindOptions{MaxBytes: maxBody}

	// score a report
	httpkit.PostJSON(r, "/", h.analyze, opt)

	// edits over a caller-held result
	httpkit.PostJSON(r, "/recalculate", h.recalculate, opt)
	httpkit.PostJSON(r, "/toggle", h.toggle, opt)
	httpkit.PostJSON(r, "/weight", h.weight, opt)
	httpkit.PostJSON(r, "/manual", h.addManual, opt)
	httpkit.PostJSON(r, "/manual/remove", h.removeManual, opt)
}

type handlers struct{ svc svc.Service }

// @Summary Analyze a report
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Report"
// @Success 200 {object} hazard.AnalysisResult "ok"
// @Router /analysis [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}

// @Summary Re-aggregate an edited category set
// @Tags Analysis
// @Param payload body domain.RecalculateInput true "Categories"
// @Success 200 {object} aggregate.Overall "ok"
// @Router /analysis/recalculate [post]
func (h *handlers) recalculate(r *stdhttp.Request, in domain.RecalculateInput) (any, error) {
	return h.svc.Recalculate(r.Context(), in)
}

// @Summary Flip one category on or off
// @Tags Analysis
// @Param payload body domain.EditInput true "Result and code"
// @Success 200 {object} hazard.AnalysisResult "ok"
// @Router /analysis/toggle [post]
func (h *handlers) toggle(r *stdhttp.Request, in domain.EditInput) (any, error) {
	return h.svc.Toggle(r.Context(), in)
}

// @Summary Set one category user weight
// @Tags Analysis
// @Param payload body domain.WeightInput true "Result, code and weight"
// @Success 200 {object} hazard.AnalysisResult "ok"
// @Router /analysis/weight [post]
func (h *handlers) weight(r *stdhttp.Request, in domain.WeightInput) (any, error) {
	return h.svc.Weight(r.Context(), in)
}

// @Summary Add a manual category
// @Tags Analysis
// @Param payload body domain.EditInput true "Result and code"
// @Success 200 {object} hazard.AnalysisResult "ok"
// @Router /analysis/manual [post]
func (h *handlers) addManual(r *stdhttp.Request, in domain.EditInput) (any, error) {
	return h.svc.AddManual(r.Context(), in)
}

// @Summary Remove a manual category
// @Tags Analysis
// @Param payload body domain.EditInput true "Result and code"
// @Success 200 {object} hazard.AnalysisResult "ok"
// @Router /analysis/manual/remove [post]
func (h *handlers) removeManual(r *stdhttp.Request, in domain.EditInput) (any, error) {
	return h.svc.RemoveManual(r.Context(), in)
}
