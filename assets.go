// Package adminui embeds the frontend assets so the compiled binary serves
// templates and static files without a disk checkout.
package adminui

import "embed"

// TemplateFS contains the HTML templates.
//
//go:embed frontend/templates
var TemplateFS embed.FS

// StaticFS contains the static assets (CSS, images).
//
//go:embed frontend/static
var StaticFS embed.FS
