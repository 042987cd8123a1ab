// Package router sets up all HTTP routes and middleware chains for the
// help center. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"helpcenter/internal/handlers"
	"helpcenter/internal/middleware"
	"helpcenter/internal/session"
	"helpcenter/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. loginLimiter throttles PIN guesses on the
// admin login form.
func New(sessionStore *session.Store, loginLimiter *middleware.RateLimiter, admin *handlers.Admin, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets (compiled CSS).
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Admin routes — PIN session plus CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		// PIN submissions are throttled before any other check runs, so
		// guessing costs attempts even without a valid CSRF token.
		r.With(loginLimiter.Middleware, middleware.CSRF).Post("/login", admin.LoginSubmit)

		r.Group(func(r chi.Router) {
			r.Use(middleware.CSRF)

			r.Get("/login", admin.LoginPage)
			r.Post("/logout", admin.Logout)

			// Panel and CRUD — admin session required.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/", admin.Panel)

				r.Route("/categories", func(r chi.Router) {
					r.Post("/", admin.CreateCategory)
					r.Post("/{id}/update", admin.UpdateCategory)
					r.Post("/{id}/delete", admin.DeleteCategory)
				})

				r.Route("/articles", func(r chi.Router) {
					r.Post("/", admin.CreateArticle)
					r.Post("/{id}/update", admin.UpdateArticle)
					r.Post("/{id}/delete", admin.DeleteArticle)
				})
			})
		})
	})

	// Public routes.
	r.Get("/", public.Home)
	r.Get("/categoria/{slug}", public.CategoryPage)
	r.Get("/artigo/{id}", public.ArticlePage)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
