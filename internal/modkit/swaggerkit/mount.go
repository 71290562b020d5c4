package swaggerkit

import (
	"net/http"

	phttp "cictt/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options control the docs mount
type Options struct {
	Enabled bool
	// BasePath is the servers url advertised in the document
	BasePath string
	// TitleSuffix is appended to info.title (environment name, usually)
	TitleSuffix string
}

// Mount serves the Swagger UI under /api/docs and the document at /api/docs/doc.json
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	if o.BasePath == "" {
		o.BasePath = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("cictt"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
