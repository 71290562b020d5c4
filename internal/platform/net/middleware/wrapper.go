// Package middleware adapts chi and go-chi/cors middleware and adds the in-house
// request context, panic recovery and access log handlers
package middleware

import (
	"net/http"
	"time"

	pnet "cictt/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the standard net/http middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID accepts or mints X-Request-ID and stores it on the context
func RequestID() Middleware { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache disables client and proxy caching
func NoCache() Middleware { return chimw.NoCache }

// Compress gzips/deflates responses at level for JSON and text bodies
func Compress(level int) Middleware {
	return chimw.NewCompressor(level, "application/json", "text/plain", "text/html").Handler
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// RequestContext copies the chi request id onto the logger context and echoes it
// in the X-Request-ID response header. Mount after RequestID
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := pnet.RequestID(r.Context()); id != "" {
			w.Header().Set(chimw.RequestIDHeader, id)
			r = r.WithContext(pnet.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// CORSOptions is the subset of go-chi/cors settings the API exposes
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS allows the analysis front end to call the API from another origin
func CORS(o CORSOptions) Middleware {
	origins := o.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         o.MaxAge,
	})
}
