// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"helpcenter/internal/middleware"
	"helpcenter/internal/render"
	"helpcenter/internal/session"
)

// LoginPage renders the PIN entry form. Admins already holding a session
// are sent straight to the panel.
func (a *Admin) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && sess.Admin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin_login", &render.PageData{
		Title: "Acesso administrativo",
	})
}

// LoginSubmit checks the submitted PIN against the configured shared
// secret. The comparison is constant-time; the route is rate-limited to
// slow down guessing.
func (a *Admin) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	pin := strings.TrimSpace(r.FormValue("pin"))

	if subtle.ConstantTimeCompare([]byte(pin), []byte(a.cfg.AdminPIN)) != 1 {
		slog.Warn("admin login failed", "remote", r.RemoteAddr)
		a.renderer.PageStatus(w, r, "admin_login", http.StatusUnauthorized, &render.PageData{
			Title: "Acesso administrativo",
			Flash: &render.Flash{Type: "error", Message: "PIN incorreto."},
		})
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{Admin: true}); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("admin login", "remote", r.RemoteAddr)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout destroys the session and returns to the public site.
func (a *Admin) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
