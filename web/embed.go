// Package web provides embedded static assets for the help center. In
// development, templates load TailwindCSS from CDN; in production, the
// compiled stylesheet is embedded here and served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. Production builds
// compile static/css/input.css into static/css/app.css before go build
// runs; in local development only the source file is present.
//
//go:embed all:static
var StaticFS embed.FS
