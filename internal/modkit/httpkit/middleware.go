package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"cictt/internal/platform/net/middleware"
)

// StackOptions tune the baseline middleware stack
type StackOptions struct {
	CORS    middleware.CORSOptions
	Timeout time.Duration
	// SlowRequest marks access log lines at warn
	SlowRequest time.Duration
}

// CommonStack returns the baseline middleware slice for the root router.
// Order matters: the request id exists before anything logs, recovery wraps the
// handlers and the access log sees the final status
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RequestContext,
		middleware.RealIP(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{
			Slow: o.SlowRequest,
			Skip: []string{"/health"},
		}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// cross-origin
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(timeout),
	}
}
