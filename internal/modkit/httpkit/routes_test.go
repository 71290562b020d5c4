package httpkit

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func stringsReader(s string) io.Reader { return strings.NewReader(s) }

func noop(next http.Handler) http.Handler { return next }

func TestMountUnder_AppliesMiddlewareAndMounts(t *testing.T) {
	f := &fakeRouter{}
	mounted := 0
	MountUnder(f, "/analysis", []func(http.Handler) http.Handler{noop, noop}, func(Router) { mounted++ })

	if len(f.prefixes) != 1 || f.prefixes[0] != "/analysis" {
		t.Fatalf("prefixes = %v", f.prefixes)
	}
	if len(f.mwLens) != 1 || f.mwLens[0] != 2 {
		t.Fatalf("Use calls = %v, want one call with 2", f.mwLens)
	}
	if mounted != 1 {
		t.Fatalf("mount called %d times", mounted)
	}
}

func TestMountUnder_NoMiddlewareSkipsUse(t *testing.T) {
	f := &fakeRouter{}
	MountUnder(f, "/meta", nil, func(Router) {})
	if len(f.mwLens) != 0 {
		t.Fatalf("Use should not be called, got %v", f.mwLens)
	}
}

func TestMountAPI_Prefix(t *testing.T) {
	cases := map[string]string{
		"v1":  "/api/v1",
		"/v2": "/api/v2",
		"v3/": "/api/v3",
	}
	for in, want := range cases {
		f := &fakeRouter{}
		MountAPI(f, in, nil, func(Router) {})
		if len(f.prefixes) != 1 || f.prefixes[0] != want {
			t.Fatalf("MountAPI(%q) prefixes = %v, want %s", in, f.prefixes, want)
		}
	}

	f := &fakeRouter{}
	MountAPIV1(f, []func(http.Handler) http.Handler{noop}, func(r Router) {
		Get(r, "/ping", func(*http.Request) (any, error) { return "pong", nil })
	})
	if f.prefixes[0] != "/api/v1" || len(f.calls) != 1 || f.calls[0].path != "/ping" {
		t.Fatalf("MountAPIV1 = %v %+v", f.prefixes, f.calls)
	}
}
