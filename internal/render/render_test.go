package render

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"helpcenter/internal/middleware"
	"helpcenter/internal/models"
	"helpcenter/internal/session"
	"helpcenter/internal/store"
)

func adminSession() *session.Data {
	return &session.Data{Admin: true, CreatedAt: time.Now()}
}

// requestWithSession builds an *http.Request whose context carries a session,
// simulating the state after LoadSession has run.
func requestWithSession(method, target string, sess *session.Data) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if sess != nil {
		ctx := context.WithValue(req.Context(), middleware.SessionKey, sess)
		req = req.WithContext(ctx)
	}
	return req
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
	}{
		{"dev mode", true},
		{"prod mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rn, err := New(tt.devMode)
			if err != nil {
				t.Fatalf("New(devMode=%v) returned error: %v", tt.devMode, err)
			}
			if len(rn.templates) == 0 {
				t.Fatal("renderer has no parsed templates")
			}

			for _, name := range []string{"home", "category", "article", "not_found", "admin_login", "admin_panel"} {
				if _, ok := rn.templates[name]; !ok {
					t.Errorf("expected template %q to be parsed", name)
				}
			}

			// Layout files should NOT appear as standalone template keys.
			if _, ok := rn.templates["base"]; ok {
				t.Error("base.html should not be registered as a separate template")
			}
			if _, ok := rn.templates["sidebar"]; ok {
				t.Error("sidebar.html should not be registered as a separate template")
			}
		})
	}
}

func TestNewDevMode(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New(true) error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rn.Page(w, req, "home", &PageData{Title: "Central de Ajuda"})

	body := w.Body.String()
	if !strings.Contains(body, "cdn.tailwindcss.com") {
		t.Error("dev mode: expected CDN tailwindcss URL in rendered output")
	}
	if strings.Contains(body, "/static/css/app.css") {
		t.Error("dev mode: should NOT contain local static asset path")
	}
}

func TestNewProdMode(t *testing.T) {
	rn, err := New(false)
	if err != nil {
		t.Fatalf("New(false) error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rn.Page(w, req, "home", &PageData{Title: "Central de Ajuda"})

	body := w.Body.String()
	if strings.Contains(body, "cdn.tailwindcss.com") {
		t.Error("prod mode: should NOT contain CDN tailwindcss URL")
	}
	if !strings.Contains(body, "/static/css/app.css") {
		t.Error("prod mode: expected local static asset path in rendered output")
	}
}

func TestHomeRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	desc := "Planos e faturas"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	rn.Page(w, req, "home", &PageData{
		Title: "Central de Ajuda",
		Data: map[string]any{
			"Categories": []models.Category{
				{ID: 1, Title: "Cobrança", Slug: "cobranca", Description: &desc, ArticleCount: 3},
			},
			"QuickAccess": []models.Article{
				{ID: 7, Title: "Como emitir segunda via", CategoryTitle: "Cobrança"},
			},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("full page render should contain <!DOCTYPE html>")
	}
	if !strings.Contains(body, "Cobrança") {
		t.Error("should contain category title")
	}
	if !strings.Contains(body, "/categoria/cobranca") {
		t.Error("should link to category page")
	}
	if !strings.Contains(body, "Como emitir segunda via") {
		t.Error("should contain quick access article")
	}
	if !strings.Contains(body, "/artigo/7") {
		t.Error("should link to article page")
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
}

func TestHomeSearchResults(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/?q=senha", nil)
	w := httptest.NewRecorder()

	rn.Page(w, req, "home", &PageData{
		Title: "Central de Ajuda",
		Query: "senha",
		Data: map[string]any{
			"Results": []store.CategoryArticles{
				{
					Category: models.Category{ID: 2, Title: "Segurança", Slug: "seguranca"},
					Articles: []models.Article{
						{ID: 3, Title: "Como redefinir sua senha", CategoryID: 2},
					},
				},
			},
		},
	})

	body := w.Body.String()
	if !strings.Contains(body, "Como redefinir sua senha") {
		t.Error("should list matching article")
	}
	if !strings.Contains(body, "/categoria/seguranca") {
		t.Error("result group should link to its category")
	}
	if !strings.Contains(body, `value="senha"`) {
		t.Error("search box should echo the query")
	}
	// Category grid is replaced by results when searching.
	if strings.Contains(body, "Acesso rápido") {
		t.Error("quick access section should be hidden during search")
	}
}

func TestSidebarRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	groups := []store.CategoryArticles{
		{
			Category: models.Category{ID: 1, Title: "Cobrança", Slug: "cobranca"},
			Articles: []models.Article{{ID: 3, Title: "Emitir nota fiscal", CategoryID: 1}},
		},
		{
			Category: models.Category{ID: 2, Title: "Segurança", Slug: "seguranca"},
			Articles: []models.Article{{ID: 4, Title: "Como redefinir sua senha", CategoryID: 2}},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/categoria/seguranca", nil)
	w := httptest.NewRecorder()
	rn.Page(w, req, "category", &PageData{
		Title: "Segurança",
		Data: map[string]any{
			"Category":      &models.Category{ID: 2, Title: "Segurança", Slug: "seguranca"},
			"Articles":      groups[1].Articles,
			"Sidebar":       groups,
			"SidebarActive": int64(2),
		},
	})

	body := w.Body.String()
	if !strings.Contains(body, "/artigo/3") || !strings.Contains(body, "/artigo/4") {
		t.Error("sidebar should link articles from every category")
	}
	if !strings.Contains(body, "<details open") {
		t.Error("active category should render expanded")
	}
	// The sidebar carries its own search form.
	if !strings.Contains(body, `name="q"`) {
		t.Error("sidebar should render the search input")
	}
}

func TestSidebarAbsentWithoutData(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/categoria/cobranca", nil)
	w := httptest.NewRecorder()
	rn.Page(w, req, "category", &PageData{
		Title: "Cobrança",
		Data: map[string]any{
			"Category": &models.Category{ID: 1, Title: "Cobrança", Slug: "cobranca"},
			"Articles": []models.Article{},
		},
	})

	if strings.Contains(w.Body.String(), "<aside") {
		t.Error("pages without sidebar data should render single column")
	}
}

func TestArticleRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	video := "https://videos.example.com/abc"
	art := models.Article{
		ID:            5,
		Title:         "Integração via API",
		Content:       "# ignored, handlers pass ContentHTML",
		VideoURL:      &video,
		ViewCount:     42,
		UpdatedAt:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		CategoryTitle: "Integrações",
		CategorySlug:  "integracoes",
	}

	req := httptest.NewRequest(http.MethodGet, "/artigo/5", nil)
	w := httptest.NewRecorder()
	rn.Page(w, req, "article", &PageData{
		Title: art.Title,
		Data: map[string]any{
			"Article":     art,
			"ContentHTML": template.HTML("<h1>Integração via API</h1><p>Passo a passo.</p>"),
		},
	})

	body := w.Body.String()
	if !strings.Contains(body, "<h1>Integração via API</h1>") {
		t.Error("rendered markdown HTML should pass through unescaped")
	}
	if !strings.Contains(body, "/categoria/integracoes") {
		t.Error("breadcrumb should link to the category")
	}
	if !strings.Contains(body, "https://videos.example.com/abc") {
		t.Error("video link should be rendered")
	}
	if !strings.Contains(body, "14/03/2026") {
		t.Error("updated date should be formatted dd/mm/yyyy")
	}
}

func TestArticleWithoutCategoryOmitsBreadcrumbLink(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	art := models.Article{ID: 9, Title: "Artigo órfão", CategoryID: 99}

	req := httptest.NewRequest(http.MethodGet, "/artigo/9", nil)
	w := httptest.NewRecorder()
	rn.Page(w, req, "article", &PageData{
		Title: art.Title,
		Data: map[string]any{
			"Article":     art,
			"ContentHTML": template.HTML("<p>corpo</p>"),
		},
	})

	body := w.Body.String()
	if strings.Contains(body, "/categoria/") {
		t.Error("article without a live category should not link to one")
	}
	if !strings.Contains(body, "Artigo órfão") {
		t.Error("article title should still render")
	}
}

func TestStandaloneLoginTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: "tok-123"})
	w := httptest.NewRecorder()

	rn.Page(w, req, "admin_login", &PageData{Title: "Login"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("standalone template should contain its own document shell")
	}
	if !strings.Contains(body, `name="pin"`) {
		t.Error("login page should contain the PIN field")
	}
	// CSRF token injected from the cookie.
	if !strings.Contains(body, "tok-123") {
		t.Error("CSRF token should be injected into the form")
	}
	// No public header from base.html.
	if strings.Contains(body, "Categorias</h2>") {
		t.Error("standalone login should not render base layout content")
	}
}

func TestMissingTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	rn.Page(w, req, "nonexistent_template", &PageData{})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not found") {
		t.Error("error response should mention template not found")
	}
}

func TestPageStatusNotFound(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/categoria/inexistente", nil)
	w := httptest.NewRecorder()
	rn.PageStatus(w, req, "not_found", http.StatusNotFound, &PageData{
		Title: "Não encontrada",
		Data:  map[string]any{"Message": "Categoria não encontrada."},
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Categoria não encontrada.") {
		t.Error("custom not-found message should render")
	}
}

func TestSessionInjectionFromContext(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sess := adminSession()
	req := requestWithSession(http.MethodGet, "/", sess)
	w := httptest.NewRecorder()

	data := &PageData{Title: "Central de Ajuda"}
	rn.Page(w, req, "home", data)

	if data.Session == nil || !data.Session.Admin {
		t.Error("expected admin session to be injected from context")
	}
	// Admin nav appears for admin sessions.
	if !strings.Contains(w.Body.String(), "/admin") {
		t.Error("admin nav should render for admin sessions")
	}
}
