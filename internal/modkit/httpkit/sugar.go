package httpkit

import (
	"net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Delete registers a no-body handler under DELETE
func Delete(r Router, path string, h func(*http.Request) (any, error)) {
	r.Delete(path, Call(h))
}

// PostJSON mounts a decoded, validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...BindOptions) {
	r.Post(path, JSON(h, opts...))
}

// PutJSON mounts a decoded, validated JSON handler under PUT
func PutJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...BindOptions) {
	r.Put(path, JSON(h, opts...))
}
