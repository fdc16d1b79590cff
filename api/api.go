// Package api embeds the OpenAPI contract served and enforced by the HTTP adapter.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPI []byte
