package middleware

import (
	"net/http"
	"runtime/debug"

	perr "cictt/internal/platform/errors"
	"cictt/internal/platform/logger"
	phttp "cictt/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.PanicErrf("internal error"))
		}()
		next.ServeHTTP(w, r)
	})
}

// NotFoundJSON is the router fallback for unknown routes
func NotFoundJSON(w http.ResponseWriter, r *http.Request) {
	phttp.RespondError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowedJSON is the router fallback for known paths with the wrong method
func MethodNotAllowedJSON(w http.ResponseWriter, r *http.Request) {
	phttp.RespondError(w, r, perr.MethodNotAllowedf("method %s not allowed on %s", r.Method, r.URL.Path))
}
