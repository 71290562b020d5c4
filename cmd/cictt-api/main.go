// @title         CICTT Hazard API
// @version       0.1.0
// @description   Keyword-weighted hazard scoring against the CICTT taxonomy

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cictt/internal/adapters/llm"
	"cictt/internal/core/engine"
	"cictt/internal/platform/config"
	"cictt/internal/platform/logger"
	phttp "cictt/internal/platform/net/http"

	"cictt/internal/services/api"
)

func main() {
	// .env is optional; the process environment wins
	_ = config.LoadDotenv()

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	analyzeCfg := root.Prefix("CORE_ANALYZE_") // analyzeCfg lives under CORE_ANALYZE_*

	// the taxonomy is embedded; a broken table panics here rather than per request
	eng := engine.New(nil)
	an, backend := llm.Select(analyzeCfg, eng)

	// http server (reads CORE_API_PORT and timeouts)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	opt := api.OptionsFrom(apiCfg)
	opt.Logger = l
	opt.Engine = eng
	opt.Analyzer = an
	opt.Backend = backend
	api.Mount(srv.Router(), opt)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
