// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "cictt/internal/platform/net/http"
	"cictt/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// BindOptions tune body decoding (size cap, unknown fields)
	BindOptions = bind.Options
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON decodes and validates T from the body before calling fn.
// fn may return a Response to pick the status, anything else is wrapped in OK
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...BindOptions) Handler {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := bind.ParseJSON[T](w, r, opts...)
		if err != nil {
			phttp.RespondError(w, r, err)
			return
		}
		Handle(func(r *http.Request) Response { return wrap(fn(r, in)) })(w, r)
	}
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return wrap(fn(r)) })
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}

// Param reads a path parameter such as {code}
func Param(r *http.Request, name string) string { return phttp.URLParam(r, name) }

func wrap(out any, err error) Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(phttp.Response); ok {
		return resp
	}
	return phttp.OK(out)
}
