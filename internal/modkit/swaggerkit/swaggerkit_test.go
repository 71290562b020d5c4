package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "cictt/internal/platform/net/http"
	"cictt/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func serveDoc(t *testing.T, o Options) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), o)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var spec map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &spec)
	return rec, spec
}

func TestMount_Disabled(t *testing.T) {
	rec, _ := serveDoc(t, Options{})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs status = %d", rec.Code)
	}
}

func TestDocJSON_EmbeddedDocument(t *testing.T) {
	testkit.Serial(t)

	rec, spec := serveDoc(t, Options{Enabled: true, TitleSuffix: "(staging)"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	if title := spec["info"].(map[string]any)["title"]; title != "CICTT Hazard Analysis API (staging)" {
		t.Fatalf("title = %v", title)
	}

	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}
	post := spec["paths"].(map[string]any)["/analysis"].(map[string]any)["post"].(map[string]any)
	responses := post["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "413", "500", "503"} {
		if _, ok := responses[code]; !ok {
			t.Fatalf("/analysis missing %s response", code)
		}
	}
}

func TestDocJSON_Mutators(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &mutators, nil)

	Register(nil)
	Register(func(spec map[string]any) { spec["x-engine"] = "keyword" })
	_, spec := serveDoc(t, Options{Enabled: true})
	if spec["x-engine"] != "keyword" {
		t.Fatalf("mutator not applied: %v", spec["x-engine"])
	}
}

func TestDocJSON_BadDocument(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &docReader, func() string { return "{nope" })

	rec, _ := serveDoc(t, Options{Enabled: true})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestEnsureServers_Downgrades(t *testing.T) {
	spec := map[string]any{"openapi": "3.1.0"}
	ensureServers(spec, "/x")
	if spec["openapi"] != "3.0.3" || spec["servers"] == nil {
		t.Fatalf("spec = %v", spec)
	}

	swagger2 := map[string]any{"swagger": "2.0", "servers": []any{}}
	ensureServers(swagger2, "/x")
	if _, ok := swagger2["swagger"]; ok || swagger2["openapi"] != "3.0.3" {
		t.Fatalf("swagger 2 not lifted: %v", swagger2)
	}
}

func TestMount_RedirectAndUI(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{Enabled: true})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/index.html", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ui status = %d", rec.Code)
	}
}
