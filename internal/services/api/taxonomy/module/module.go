// Package module wires the taxonomy catalog into the API using modkit
package module

import (
	modkit "cictt/internal/modkit"
	"cictt/internal/modkit/httpkit"

	thttp "cictt/internal/services/api/taxonomy/http"
	tsvc "cictt/internal/services/api/taxonomy/service"
)

// Module implements the taxonomy module
type Module struct {
	modkit.Base
	svc tsvc.Service
}

// New constructs the taxonomy module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps = deps.WithDefaults()
	b := modkit.Build(append([]modkit.Option{modkit.WithName("taxonomy"), modkit.WithPrefix("/taxonomy")}, opts...)...)

	m := &Module{svc: tsvc.New(deps.Engine)}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		thttp.Register(r, m.svc)
	})
	return m
}

// Ports exposes the catalog service
func (m *Module) Ports() any { return m.svc }
