// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"cictt/internal/core/version"
	"cictt/internal/modkit/httpkit"
)

// EngineInfo is satisfied by the analysis module's engine port
type EngineInfo interface {
	Backend() string
	TaxonomyVersion() int
	Categories() int
	Groups() int
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// Modules lists mounted module names; called per request so late registrations show
	Modules func() []string
	Engine  EngineInfo
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	if d.Engine != nil {
		httpkit.Get(r, "/engine", h.engine)
	}
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"cictt-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"cictt-api"`
	Started string   `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules"`
}

// EngineResponse reports the analyzer behind /analysis and the taxonomy it scores against
type EngineResponse struct {
	Backend         string `json:"backend"         example:"keyword"`
	TaxonomyVersion int    `json:"taxonomyVersion" example:"1"`
	Categories      int    `json:"categories"      example:"35"`
	Groups          int    `json:"groups"          example:"11"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	mods := []string{}
	if h.deps.Modules != nil {
		mods = append(mods, h.deps.Modules()...)
	}
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Modules: mods,
	}, nil
}

// swagger:route GET /meta/engine Meta metaEngine
// @Summary Analyzer backend and taxonomy size
// @Tags Meta
// @Produce json
// @Success 200 type EngineResponse ok
// @Router /meta/engine [get]
func (h *handlers) engine(_ *http.Request) (any, error) {
	e := h.deps.Engine
	return EngineResponse{
		Backend:         e.Backend(),
		TaxonomyVersion: e.TaxonomyVersion(),
		Categories:      e.Categories(),
		Groups:          e.Groups(),
	}, nil
}
