package httpkit

import (
	"net/http"

	phttp "cictt/internal/platform/net/http"
)

type call struct {
	verb string
	path string
	h    phttp.Handler
}

// fakeRouter records what modules and helpers mount on it
type fakeRouter struct {
	prefixes []string
	mwLens   []int
	calls    []call
}

func (f *fakeRouter) add(verb, path string, h phttp.Handler) {
	f.calls = append(f.calls, call{verb, path, h})
}

func (f *fakeRouter) Get(p string, h phttp.Handler)    { f.add(http.MethodGet, p, h) }
func (f *fakeRouter) Post(p string, h phttp.Handler)   { f.add(http.MethodPost, p, h) }
func (f *fakeRouter) Put(p string, h phttp.Handler)    { f.add(http.MethodPut, p, h) }
func (f *fakeRouter) Delete(p string, h phttp.Handler) { f.add(http.MethodDelete, p, h) }
func (f *fakeRouter) Handle(p string, h http.Handler)  { f.add("HANDLE", p, h.ServeHTTP) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) { f.mwLens = append(f.mwLens, len(mw)) }
func (f *fakeRouter) Group(fn func(Router))                     { fn(f) }
func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) NotFound(phttp.Handler)         {}
func (f *fakeRouter) MethodNotAllowed(phttp.Handler) {}
func (f *fakeRouter) Mux() http.Handler              { return http.NewServeMux() }

var _ Router = (*fakeRouter)(nil)
