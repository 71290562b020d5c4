package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cictt/internal/core/engine"
	perr "cictt/internal/platform/errors"
	phttp "cictt/internal/platform/net/http"
	svc "cictt/internal/services/api/taxonomy/service"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	Code  perr.ErrorCode  `json:"code"`
	Field string          `json:"field"`
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

func get(t *testing.T, path string) (int, envelope) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), svc.New(engine.New(nil)))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v body=%s", err, rr.Body.String())
	}
	return rr.Code, env
}

func TestRoutes_OK(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/categories", `"code":"LOC-I"`},
		{"/categories?group=Loss%20of%20Control", `"code":"AMAN"`},
		{"/categories/CFIT", `"keywords":[`},
		{"/categories/loc-i", `"code":"LOC-I"`},
		{"/categories/BIRD/manual", `"isManuallyAdded":true`},
		{"/groups", `"Loss of Control"`},
		{"/search?q=fuel&threshold=5", `"code":"FUEL"`},
		{"/search?q=zzzz", `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			status, env := get(t, tc.path)
			if status != stdhttp.StatusOK {
				t.Fatalf("status = %d (%s)", status, env.Error)
			}
			if !json.Valid(env.Data) || !strings.Contains(string(env.Data), tc.want) {
				t.Fatalf("data = %s, want %s", env.Data, tc.want)
			}
		})
	}
}

func TestRoutes_Errors(t *testing.T) {
	cases := []struct {
		path   string
		status int
		field  string
	}{
		{"/categories?group=Nope", stdhttp.StatusNotFound, "group"},
		{"/categories/NOPE", stdhttp.StatusNotFound, "code"},
		{"/categories/NOPE/manual", stdhttp.StatusNotFound, "code"},
		{"/categories/bad%20code", stdhttp.StatusBadRequest, "code"},
		{"/search", stdhttp.StatusBadRequest, "q"},
		{"/search?q=fuel&threshold=high", stdhttp.StatusUnprocessableEntity, "threshold"},
		{"/search?q=fuel&threshold=11", stdhttp.StatusBadRequest, "threshold"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			status, env := get(t, tc.path)
			if status != tc.status || env.Field != tc.field {
				t.Fatalf("status=%d field=%q, want %d/%q (%s)", status, env.Field, tc.status, tc.field, env.Error)
			}
		})
	}
}
