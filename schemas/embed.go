// Package schemas embeds the JSON Schemas for the service's published
// event contracts.
package schemas

import "embed"

//go:embed events
var SchemasFS embed.FS
