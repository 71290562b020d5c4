// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "cictt/internal/modkit"
	"cictt/internal/modkit/httpkit"
	"cictt/internal/modkit/module"

	metahttp "cictt/internal/services/api/meta/http"
)

// ServiceName is reported by the health, version and service endpoints
const ServiceName = "cictt-api"

// Ports is what meta consumes from other modules, injected with modkit.WithPorts
type Ports struct {
	Engine metahttp.EngineInfo
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	var in Ports
	if p, ok := b.Ports.(Ports); ok {
		in = p
	}

	m := &Module{startedAt: time.Now()}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			Modules:     module.Names,
			Engine:      in.Engine,
		})
	})
	return m
}
