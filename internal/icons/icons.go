// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package icons maps stored icon-name strings to inline SVG markup.
// The catalog is a fixed enumerated list shared with the admin form's
// icon picker, so only known names are stored going forward. Resolution
// is total: any input (unknown name, empty string, nil) yields a valid
// renderable icon.
package icons

import (
	"html/template"
	"sort"
	"strings"
)

// DefaultName is the generic fallback icon used when neither the stored
// name nor the category label resolves.
const DefaultName = "FileText"

// Icon is a renderable icon reference.
type Icon struct {
	Name string
	Body template.HTML // inner SVG elements, wrapped by SVG()
}

// catalog enumerates every known icon. Keys are the exact strings stored
// in the icon_name columns; values are the inner markup of a 24x24
// stroke-style SVG.
var catalog = map[string]template.HTML{
	"FileText":      `<path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z"/><path d="M14 2v6h6"/><path d="M16 13H8"/><path d="M16 17H8"/><path d="M10 9H8"/>`,
	"FileQuestion":  `<path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8z"/><path d="M14 2v6h6"/><path d="M10 11a2 2 0 1 1 3.6 1.2c-.5.6-1.1 1-1.6 1.8"/><path d="M12 17h.01"/>`,
	"HelpCircle":    `<circle cx="12" cy="12" r="10"/><path d="M9.1 9a3 3 0 0 1 5.8 1c0 2-3 3-3 3"/><path d="M12 17h.01"/>`,
	"KeyRound":      `<path d="M21 2l-2 2m-7.6 7.6a5.5 5.5 0 1 1-7.8 7.8 5.5 5.5 0 0 1 7.8-7.8zm0 0L15.5 7.5m0 0 3 3L22 7l-3-3m-3.5 3.5L19 4"/>`,
	"Plug":          `<path d="M12 22v-5"/><path d="M9 8V2"/><path d="M15 8V2"/><path d="M18 8v5a4 4 0 0 1-4 4h-4a4 4 0 0 1-4-4V8z"/>`,
	"CreditCard":    `<rect x="2" y="5" width="20" height="14" rx="2"/><path d="M2 10h20"/>`,
	"Settings":      `<circle cx="12" cy="12" r="3"/><path d="M19.4 15a1.65 1.65 0 0 0 .33 1.82l.06.06a2 2 0 1 1-2.83 2.83l-.06-.06a1.65 1.65 0 0 0-1.82-.33 1.65 1.65 0 0 0-1 1.51V21a2 2 0 1 1-4 0v-.09a1.65 1.65 0 0 0-1-1.51 1.65 1.65 0 0 0-1.82.33l-.06.06a2 2 0 1 1-2.83-2.83l.06-.06a1.65 1.65 0 0 0 .33-1.82 1.65 1.65 0 0 0-1.51-1H3a2 2 0 1 1 0-4h.09a1.65 1.65 0 0 0 1.51-1 1.65 1.65 0 0 0-.33-1.82l-.06-.06a2 2 0 1 1 2.83-2.83l.06.06a1.65 1.65 0 0 0 1.82.33h.01a1.65 1.65 0 0 0 1-1.51V3a2 2 0 1 1 4 0v.09a1.65 1.65 0 0 0 1 1.51 1.65 1.65 0 0 0 1.82-.33l.06-.06a2 2 0 1 1 2.83 2.83l-.06.06a1.65 1.65 0 0 0-.33 1.82v.01a1.65 1.65 0 0 0 1.51 1H21a2 2 0 1 1 0 4h-.09a1.65 1.65 0 0 0-1.51 1z"/>`,
	"Rocket":        `<path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"/><path d="M12 15l-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"/><path d="M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"/><path d="M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"/>`,
	"BookOpen":      `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/>`,
	"MessageCircle": `<path d="M21 11.5a8.38 8.38 0 0 1-.9 3.8 8.5 8.5 0 0 1-7.6 4.7 8.38 8.38 0 0 1-3.8-.9L3 21l1.9-5.7a8.38 8.38 0 0 1-.9-3.8 8.5 8.5 0 0 1 4.7-7.6 8.38 8.38 0 0 1 3.8-.9h.5a8.48 8.48 0 0 1 8 8z"/>`,
	"Shield":        `<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/>`,
	"Users":         `<path d="M17 21v-2a4 4 0 0 0-4-4H5a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M23 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"Video":         `<path d="M23 7l-7 5 7 5z"/><rect x="1" y="5" width="15" height="14" rx="2"/>`,
	"Zap":           `<path d="M13 2 3 14h9l-1 8 10-12h-9z"/>`,
	"Globe":         `<circle cx="12" cy="12" r="10"/><path d="M2 12h20"/><path d="M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"/>`,
	"Mail":          `<rect x="2" y="4" width="20" height="16" rx="2"/><path d="m22 7-10 6L2 7"/>`,
	"Wrench":        `<path d="M14.7 6.3a1 1 0 0 0 0 1.4l1.6 1.6a1 1 0 0 0 1.4 0l3.77-3.77a6 6 0 0 1-7.94 7.94l-6.91 6.91a2.12 2.12 0 0 1-3-3l6.91-6.91a6 6 0 0 1 7.94-7.94z"/>`,
	"Search":        `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	"Lock":          `<rect x="3" y="11" width="18" height="11" rx="2"/><path d="M7 11V7a5 5 0 0 1 10 0v4"/>`,
}

// categoryFallbacks maps upper-cased category labels to icon names, used
// when an article or category row carries no usable icon_name of its own.
var categoryFallbacks = map[string]string{
	"COBRANÇA":     "CreditCard",
	"BILLING":      "CreditCard",
	"INTEGRAÇÕES":  "Plug",
	"INTEGRATIONS": "Plug",
	"SEGURANÇA":    "Shield",
	"SECURITY":     "Shield",
	"CONTA":        "Users",
	"ACCOUNT":      "Users",
	"PRIMEIROS PASSOS": "Rocket",
	"GETTING STARTED":  "Rocket",
}

// Resolve returns a renderable icon for the given stored name and
// category label. Resolution order: exact catalog match, then the
// category fallback table, then the generic default. It never fails.
func Resolve(name *string, categoryTitle string) Icon {
	if name != nil {
		if body, ok := catalog[*name]; ok {
			return Icon{Name: *name, Body: body}
		}
	}
	if fallback, ok := categoryFallbacks[strings.ToUpper(strings.TrimSpace(categoryTitle))]; ok {
		return Icon{Name: fallback, Body: catalog[fallback]}
	}
	return Default()
}

// Default returns the generic fallback icon.
func Default() Icon {
	return Icon{Name: DefaultName, Body: catalog[DefaultName]}
}

// SVG returns the complete inline <svg> element for the icon, sized and
// stroked to match the rest of the UI.
func (i Icon) SVG() template.HTML {
	return `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` + i.Body + `</svg>`
}

// Valid reports whether name is part of the icon catalog. The empty
// string is valid as "no icon chosen" (forms store it as NULL).
func Valid(name string) bool {
	if name == "" {
		return true
	}
	_, ok := catalog[name]
	return ok
}

// Names returns the sorted catalog names for the admin icon picker.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
