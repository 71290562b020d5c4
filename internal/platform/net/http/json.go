package http

import (
	"net/http"

	"cictt/internal/platform/net/http/bind"
)

// JSONHandler decodes T from the body, calls fn and wraps the result
func JSONHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.Options) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := bind.ParseJSON[T](w, r, opts...)
		if err != nil {
			Error(err).write(w, r)
			return
		}
		out, err := fn(r, in)
		if err != nil {
			Error(err).write(w, r)
			return
		}
		OK(out).write(w, r)
	}
}

// JSONHandlerNoBody calls fn without reading a body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
