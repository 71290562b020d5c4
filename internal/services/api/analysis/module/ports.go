package module

import (
	"cictt/internal/core/engine"
	"cictt/internal/services/api/analysis/domain"
)

// Ports is what the analysis module exports to other modules
type Ports struct {
	Service domain.ServicePort
	Engine  domain.EnginePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type engineInfo struct {
	eng     *engine.Engine
	backend string
}

func (e engineInfo) Backend() string      { return e.backend }
func (e engineInfo) TaxonomyVersion() int { return e.eng.Taxonomy().Version() }
func (e engineInfo) Categories() int      { return e.eng.Taxonomy().Len() }
func (e engineInfo) Groups() int          { return len(e.eng.ListGroups()) }
