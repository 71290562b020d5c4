package modkit

import (
	"net/http"

	"cictt/internal/modkit/httpkit"
	str "cictt/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Register adds routes after the module's own
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Base carries the mount plumbing shared by every API module.
// Modules embed it and override Ports when they export one
type Base struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// NewBase binds own (the module's routes) ahead of any WithRegister hook
func NewBase(b Built, own func(httpkit.Router)) Base {
	external := b.Register
	return Base{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		register: func(r httpkit.Router) {
			if own != nil {
				own(r)
			}
			if external != nil {
				external(r)
			}
		},
	}
}

// MountRoutes mounts the module under its prefix with its middlewares
func (m Base) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, m.register)
}

// Name returns the module name
func (m Base) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m Base) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m Base) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports is nil unless the embedding module overrides it
func (m Base) Ports() any { return nil }
