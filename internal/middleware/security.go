// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders sets hardening headers on every response, public pages
// and admin panel alike. The help center serves raw HTML out of the page
// cache, so the headers are applied here rather than per handler.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// No MIME sniffing on cached HTML responses.
		h.Set("X-Content-Type-Options", "nosniff")

		// The admin panel must not be frameable from other origins.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// The legacy XSS filter is off; it introduces its own bugs.
		h.Set("X-XSS-Protection", "0")

		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Opt out of FLoC cohorts.
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
