package http

import (
	"net/http"

	"cictt/internal/platform/net/http/bind"
)

// GetJSON mounts a GET handler returning JSON
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a POST handler with a decoded, validated body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.Options) {
	r.Post(path, JSONHandler(h, opts...))
}
