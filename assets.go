// Package blueweb provides the embedded templates and static files.
package blueweb

import "embed"

// StaticFS holds frontend/static, served under /static/.
//
//go:embed all:frontend/static
var StaticFS embed.FS

// TemplateFS holds the html/template sources.
//
//go:embed all:frontend/templates
var TemplateFS embed.FS
