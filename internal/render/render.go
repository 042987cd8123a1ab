// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public help
// center and the admin panel. Page templates are paired with the base
// layout; standalone templates carry their own document shell.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"helpcenter/internal/icons"
	"helpcenter/internal/middleware"
	"helpcenter/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Session   *session.Data  // Current session (nil if unauthenticated)
	CSRFToken string         // CSRF token for admin forms
	Query     string         // Active search query, echoed into the search box
	Flash     *Flash         // One-time notification message
	Data      map[string]any // Page-specific data
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success" or "error"
	Message string
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates lists templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"admin_login": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with the base layout and the
// sidebar partial.
// When devMode is true, templates load TailwindCSS from the CDN; when
// false, they reference the compiled local stylesheet.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// icon resolves a stored icon name (plus the owning category
			// title, for legacy fallbacks) to inline SVG markup.
			"icon": func(name *string, categoryTitle string) template.HTML {
				return icons.Resolve(name, categoryTitle).SVG()
			},
			// fmtDate formats timestamps for display.
			"fmtDate": func(t time.Time) string {
				return t.Format("02/01/2006")
			},
			// isDev returns true when the app runs in development mode.
			"isDev": func() bool {
				return devMode
			},
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	// Parse each page template paired with the base layout.
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		// Layout files are parsed alongside every page, never on their own.
		if name == "base.html" || name == "sidebar.html" {
			continue
		}

		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error

		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(
				templateFS, "templates/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
				templateFS, "templates/base.html", "templates/sidebar.html", "templates/"+name,
			)
		}

		if parseErr != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Render executes the named template into a byte slice, injecting the
// session and CSRF token from the request. Handlers use it when the
// rendered page also goes into the page cache.
func (rn *Renderer) Render(r *http.Request, name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	if data == nil {
		data = &PageData{}
	}

	// Inject CSRF token from the cookie (set by CSRF middleware).
	if data.CSRFToken == "" {
		data.CSRFToken = middleware.GetCSRFToken(r)
	}

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders the named template as a full HTML page.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	rn.PageStatus(w, r, name, http.StatusOK, data)
}

// PageStatus renders like Page but with an explicit HTTP status code.
// Used for not-found pages that still render the full layout.
func (rn *Renderer) PageStatus(w http.ResponseWriter, r *http.Request, name string, status int, data *PageData) {
	html, err := rn.Render(r, name, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
