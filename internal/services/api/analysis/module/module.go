// Package module wires analysis into the API using modkit
package module

import (
	modkit "cictt/internal/modkit"
	"cictt/internal/modkit/httpkit"
	"cictt/internal/platform/net/http/bind"

	ahttp "cictt/internal/services/api/analysis/http"
	asvc "cictt/internal/services/api/analysis/service"
)

// Options for the analysis module
type Options struct {
	// MaxBodyBytes caps request bodies; <= 0 means the binder default
	MaxBodyBytes int64
}

// FromConfig reads MAX_BODY_BYTES from the module's config view
func FromConfig(deps modkit.Deps) Options {
	return Options{MaxBodyBytes: deps.Cfg.MayInt64("MAX_BODY_BYTES", bind.DefaultMaxBytes)}
}

// Module implements the analysis module
type Module struct {
	modkit.Base
	svc   asvc.Service
	ports Ports
}

// New constructs the analysis module
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analysis"), modkit.WithPrefix("/analysis")}, opts...)...)

	svc := asvc.New(deps.Engine, deps.Analyzer, deps.Backend)
	m := &Module{svc: svc}
	m.ports = Ports{
		Service: svc,
		Engine:  engineInfo{eng: deps.Engine, backend: deps.Backend},
	}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		ahttp.Register(r, m.svc, o.MaxBodyBytes)
	})
	return m
}
