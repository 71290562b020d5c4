// Package api provides the HTTP API for the application
package api

import (
	"time"

	"cictt/internal/core/engine"
	"cictt/internal/platform/config"
	"cictt/internal/platform/logger"
	phttp "cictt/internal/platform/net/http"
	"cictt/internal/platform/net/middleware"

	"cictt/internal/modkit"
	"cictt/internal/modkit/httpkit"
	"cictt/internal/modkit/module"
	"cictt/internal/modkit/swaggerkit"

	analysismod "cictt/internal/services/api/analysis/module"
	metamod "cictt/internal/services/api/meta/module"
	taxonomymod "cictt/internal/services/api/taxonomy/module"
)

// Options are the API options
type Options struct {
	Config   config.Conf
	Logger   *logger.Logger
	Engine   *engine.Engine
	Analyzer engine.Analyzer
	// Backend names Analyzer; empty means keyword
	Backend string

	EnableSwagger  bool
	EnableProfiler bool
	// DocsTitleSuffix is appended to the served OpenAPI title
	DocsTitleSuffix string
	// AnalysisTimeout caps /analysis requests below the stack timeout; 0 is off
	AnalysisTimeout time.Duration

	Stack httpkit.StackOptions
}

// OptionsFrom reads the API toggles and stack settings from cfg
func OptionsFrom(cfg config.Conf) Options {
	return Options{
		Config:          cfg,
		EnableSwagger:   cfg.MayBool("SWAGGER", true),
		EnableProfiler:  cfg.MayBool("PROFILER", false),
		DocsTitleSuffix: cfg.MayString("DOCS_TITLE_SUFFIX", ""),
		AnalysisTimeout: cfg.MayDuration("ANALYSIS_TIMEOUT", 0),
		Stack: httpkit.StackOptions{
			CORS: middleware.CORSOptions{
				AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
				MaxAge:         cfg.MayInt("CORS_MAX_AGE", 300),
			},
			Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 0),
			SlowRequest: cfg.MayDuration("SLOW_REQUEST", 0),
		},
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// the stack goes on the root so /health and the docs share it; chi wants
	// middleware before the first route
	r.Use(httpkit.CommonStack(opt.Stack)...)
	r.NotFound(middleware.NotFoundJSON)
	r.MethodNotAllowed(middleware.MethodNotAllowedJSON)

	// shared deps for modules
	deps := modkit.Deps{
		Log:      opt.Logger,
		Cfg:      opt.Config,
		Engine:   opt.Engine,
		Analyzer: opt.Analyzer,
		Backend:  opt.Backend,
	}.WithDefaults()

	// analysis owns the engine port meta reports on
	var aopts []modkit.Option
	if opt.AnalysisTimeout > 0 {
		aopts = append(aopts, modkit.WithMiddlewares(middleware.Timeout(opt.AnalysisTimeout)))
	}
	analysis := analysismod.New(deps, analysismod.FromConfig(deps), aopts...)
	ap := module.MustPortsOf[analysismod.Ports](analysis)

	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{Engine: ap.Engine}))

	mods := []module.Module{
		meta,
		analysis,
		taxonomymod.New(deps),
	}

	// Swagger + profiler
	swaggerkit.Mount(r, swaggerkit.Options{Enabled: opt.EnableSwagger, TitleSuffix: opt.DocsTitleSuffix})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	deps.Log.Info().
		Str("backend", deps.Backend).
		Strs("modules", module.Names()).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
}
