// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the help center.
// Handlers are grouped by concern (public, admin) and receive their
// dependencies through the handler struct.
package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"helpcenter/internal/cache"
	"helpcenter/internal/markdown"
	"helpcenter/internal/middleware"
	"helpcenter/internal/models"
	"helpcenter/internal/render"
	"helpcenter/internal/search"
	"helpcenter/internal/store"
)

// Public groups handlers for the reader-facing help center pages. It
// checks the Valkey page cache before hitting the database, and stores
// rendered results on miss.
type Public struct {
	categories *store.CategoryStore
	articles   *store.ArticleStore
	renderer   *render.Renderer
	pageCache  *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil if
// Valkey is not configured; pages are then rendered fresh on every request.
func NewPublic(categories *store.CategoryStore, articles *store.ArticleStore, renderer *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{
		categories: categories,
		articles:   articles,
		renderer:   renderer,
		pageCache:  pageCache,
	}
}

// nonEmptyGroups drops categories without articles, matching the
// accordion in the sidebar and the search results, which never show an
// empty heading.
func nonEmptyGroups(groups []store.CategoryArticles) []store.CategoryArticles {
	var out []store.CategoryArticles
	for _, g := range groups {
		if len(g.Articles) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// attachSidebar loads the grouped category navigation into the page
// data. activeCategoryID marks which accordion group renders expanded.
// The sidebar is an aid, not the page; on failure it is omitted.
func (p *Public) attachSidebar(data *render.PageData, activeCategoryID int64) {
	categories, err := p.categories.List()
	if err != nil {
		slog.Warn("load sidebar categories failed", "error", err)
		return
	}
	all, err := p.articles.List()
	if err != nil {
		slog.Warn("load sidebar articles failed", "error", err)
		return
	}
	data.Data["Sidebar"] = nonEmptyGroups(store.GroupByCategory(categories, all))
	data.Data["SidebarActive"] = activeCategoryID
}

// cacheable reports whether the response for this request may be served
// from and stored in the page cache. Search results and pages rendered
// for a logged-in admin (which carry the admin nav) are never cached.
func (p *Public) cacheable(r *http.Request, query string) bool {
	return p.pageCache != nil && query == "" && middleware.SessionFromCtx(r.Context()) == nil
}

// Home renders the landing page: the search box, the quick access
// articles, the category grid, and the navigation sidebar. With a ?q=
// parameter it renders search results across all articles instead,
// grouped by category.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if p.cacheable(r, query) {
		if cached, ok := p.pageCache.Get(ctx, cache.HomeKey()); ok {
			writeHTML(w, cached)
			return
		}
	}

	// Categories, quick access articles, and the full article list (for
	// the sidebar and search) are independent queries; fetch them
	// concurrently.
	var (
		wg          sync.WaitGroup
		categories  []models.Category
		quickAccess []models.Article
		all         []models.Article
		catErr      error
		quickErr    error
		allErr      error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		categories, catErr = p.categories.List()
	}()
	go func() {
		defer wg.Done()
		quickAccess, quickErr = p.articles.ListQuickAccess()
	}()
	go func() {
		defer wg.Done()
		all, allErr = p.articles.List()
	}()
	wg.Wait()

	if catErr != nil {
		slog.Error("list categories failed", "error", catErr)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if quickErr != nil {
		slog.Error("list quick access articles failed", "error", quickErr)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if allErr != nil {
		slog.Error("list articles failed", "error", allErr)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := &render.PageData{
		Title: "Central de Ajuda",
		Query: query,
		Data: map[string]any{
			"Categories":  categories,
			"QuickAccess": quickAccess,
		},
	}

	// Only show categories that actually have articles; during a search
	// the sidebar narrows to the matches, like the results themselves.
	sidebar := nonEmptyGroups(store.GroupByCategory(categories, all))
	if query != "" {
		matched := search.Filter(all, query)
		sidebar = nonEmptyGroups(store.GroupByCategory(categories, matched))
		data.Data["Results"] = sidebar
	}
	data.Data["Sidebar"] = sidebar
	data.Data["SidebarActive"] = int64(0)

	html, err := p.renderer.Render(r, "home", data)
	if err != nil {
		slog.Error("render home failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.cacheable(r, query) {
		p.pageCache.Set(ctx, cache.HomeKey(), html)
	}
	writeHTML(w, html)
}

// CategoryPage renders one category and its articles, looked up by slug.
// A ?q= parameter narrows the listing to title substring matches.
func (p *Public) CategoryPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if p.cacheable(r, query) {
		if cached, ok := p.pageCache.Get(ctx, cache.CategoryKey(slugParam)); ok {
			writeHTML(w, cached)
			return
		}
	}

	category, err := p.categories.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find category by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if category == nil {
		p.notFound(w, r, "Categoria não encontrada.")
		return
	}

	articles, err := p.articles.ListByCategory(category.ID)
	if err != nil {
		slog.Error("list articles by category failed", "error", err, "category_id", category.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if query != "" {
		articles = search.Filter(articles, query)
	}

	data := &render.PageData{
		Title: category.Title,
		Query: query,
		Data: map[string]any{
			"Category": category,
			"Articles": articles,
		},
	}
	p.attachSidebar(data, category.ID)

	html, err := p.renderer.Render(r, "category", data)
	if err != nil {
		slog.Error("render category failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.cacheable(r, query) {
		p.pageCache.Set(ctx, cache.CategoryKey(slugParam), html)
	}
	writeHTML(w, html)
}

// ArticlePage renders one article by ID, with its Markdown body converted
// to HTML and a breadcrumb back to the parent category. Every render
// fires a view count increment without awaiting the result.
func (p *Public) ArticlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		p.notFound(w, r, "Artigo não encontrado.")
		return
	}

	if p.cacheable(r, "") {
		if cached, ok := p.pageCache.Get(ctx, cache.ArticleKey(id)); ok {
			go p.bumpViews(id)
			writeHTML(w, cached)
			return
		}
	}

	article, err := p.articles.FindByID(id)
	if err != nil {
		slog.Error("find article by id failed", "error", err, "article_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if article == nil {
		p.notFound(w, r, "Artigo não encontrado.")
		return
	}

	// The increment is fire-and-forget: a failed or delayed count never
	// blocks the page. Reloads re-increment; there is no de-duplication.
	go p.bumpViews(id)

	contentHTML, err := markdown.ToHTML(article.Content)
	if err != nil {
		slog.Error("render article markdown failed", "error", err, "article_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := &render.PageData{
		Title: article.Title,
		Data: map[string]any{
			"Article":     article,
			"ContentHTML": template.HTML(contentHTML),
		},
	}
	p.attachSidebar(data, article.CategoryID)

	html, err := p.renderer.Render(r, "article", data)
	if err != nil {
		slog.Error("render article failed", "error", err, "article_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.cacheable(r, "") {
		p.pageCache.Set(ctx, cache.ArticleKey(id), html)
	}
	writeHTML(w, html)
}

// bumpViews calls the view count procedure, logging failures.
func (p *Public) bumpViews(id int64) {
	if err := p.articles.IncrementViews(id); err != nil {
		slog.Warn("increment article views failed", "article_id", id, "error", err)
	}
}

// notFound renders the styled 404 page with a context-specific message.
func (p *Public) notFound(w http.ResponseWriter, r *http.Request, message string) {
	p.renderer.PageStatus(w, r, "not_found", http.StatusNotFound, &render.PageData{
		Title: "Página não encontrada",
		Data:  map[string]any{"Message": message},
	})
}

// writeHTML writes a rendered page with the HTML content type.
func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
