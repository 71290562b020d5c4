// Package docs embeds the hand-maintained OpenAPI document for the HTTP API
package docs

import _ "embed"

//go:embed openapi.json
var spec []byte

// ReadDoc returns the raw OpenAPI JSON
func ReadDoc() string { return string(spec) }
