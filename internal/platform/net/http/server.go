package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"cictt/internal/platform/config"
	"cictt/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerOptions are the listener settings read from config
type ServerOptions struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// OptionsFrom reads API_PORT and timeout keys from cfg
func OptionsFrom(cfg config.Conf) ServerOptions {
	return ServerOptions{
		Addr:            cfg.MayAddr("API_PORT", ":4000"),
		ReadTimeout:     cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    cfg.MayDuration("WRITE_TIMEOUT", 90*time.Second),
		ShutdownTimeout: cfg.MayDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Server is chi plus a stdlib http.Server
type Server struct {
	opts ServerOptions
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer builds a server from cfg; setup funcs receive the mux before any route
// is mounted, which is where global middleware goes
func NewServer(cfg config.Conf, setup ...func(*chi.Mux)) *Server {
	return NewServerWith(OptionsFrom(cfg), setup...)
}

// NewServerWith builds a server from explicit options
func NewServerWith(o ServerOptions, setup ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, fn := range setup {
		fn(m)
	}
	return &Server{
		opts: o,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              o.Addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       o.ReadTimeout,
			WriteTimeout:      o.WriteTimeout,
		},
	}
}

// Router returns the mux behind the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler returns the root handler
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Addr returns the listen address
func (s *Server) Addr() string { return s.opts.Addr }

// listen is a seam for tests
var listen = func(s *stdhttp.Server) error { return s.ListenAndServe() }

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.opts.Addr).Msg("http listening")
		errc <- listen(s.srv)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("http shutting down")
		if err := s.srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	}
}
