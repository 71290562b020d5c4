// Package modkit provides module wiring and core deps
package modkit

import (
	"cictt/internal/core/engine"
	"cictt/internal/platform/config"
	"cictt/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log      *logger.Logger
	Cfg      config.Conf
	Engine   *engine.Engine
	Analyzer engine.Analyzer
	// Backend names the analyzer for logs and the meta endpoints
	Backend string
}

// WithDefaults fills unset fields: the process logger, the embedded taxonomy
// engine and the keyword analyzer over it
func (d Deps) WithDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Get()
	}
	if d.Engine == nil {
		d.Engine = engine.New(nil)
	}
	if d.Analyzer == nil {
		d.Analyzer = engine.NewKeyword(d.Engine)
		d.Backend = BackendKeyword
	}
	if d.Backend == "" {
		d.Backend = BackendKeyword
	}
	return d
}

// Analyzer backends
const (
	BackendKeyword = "keyword"
	BackendLLM     = "llm"
)
