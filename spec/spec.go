// Package spec embeds the OpenAPI document for the trip planner API. The
// server serves it at /openapi.yaml and internal/handler/gen is generated
// from it.
package spec

import _ "embed"

// OpenAPI is the raw openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
