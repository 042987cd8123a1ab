// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"helpcenter/internal/cache"
	"helpcenter/internal/config"
	"helpcenter/internal/icons"
	"helpcenter/internal/models"
	"helpcenter/internal/render"
	"helpcenter/internal/session"
	"helpcenter/internal/slug"
	"helpcenter/internal/store"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	cfg        *config.Config
	renderer   *render.Renderer
	sessions   *session.Store
	categories *store.CategoryStore
	articles   *store.ArticleStore
	cacheLog   *store.CacheLogStore
	pageCache  *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// pageCache may be nil if Valkey is not configured.
func NewAdmin(cfg *config.Config, renderer *render.Renderer, sessions *session.Store, categories *store.CategoryStore, articles *store.ArticleStore, cacheLog *store.CacheLogStore, pageCache *cache.PageCache) *Admin {
	return &Admin{
		cfg:        cfg,
		renderer:   renderer,
		sessions:   sessions,
		categories: categories,
		articles:   articles,
		cacheLog:   cacheLog,
		pageCache:  pageCache,
	}
}

// panelState carries everything needed to (re-)render the admin panel,
// including retained form values and a flash message after a failed write.
type panelState struct {
	tab            string
	flash          *render.Flash
	categoryForm   map[string]string
	articleForm    map[string]string
	editCategoryID int64
	editArticleID  int64
	status         int
}

// Panel renders the admin panel with its two tabs: category management
// and article management. ?edit=<id> pre-fills the form of the active tab.
func (a *Admin) Panel(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if tab != "articles" {
		tab = "categories"
	}

	st := panelState{tab: tab}

	if editParam := r.URL.Query().Get("edit"); editParam != "" {
		id, err := strconv.ParseInt(editParam, 10, 64)
		if err == nil {
			a.prefillEdit(&st, id)
		}
	}

	a.renderPanel(w, r, st)
}

// prefillEdit loads the entity being edited and fills the form values.
func (a *Admin) prefillEdit(st *panelState, id int64) {
	switch st.tab {
	case "categories":
		c, err := a.categories.FindByID(id)
		if err != nil {
			slog.Error("load category for edit failed", "error", err, "category_id", id)
			return
		}
		if c == nil {
			return
		}
		st.editCategoryID = c.ID
		st.categoryForm = map[string]string{
			"title":       c.Title,
			"description": derefStr(c.Description),
			"icon_name":   derefStr(c.IconName),
			"home_order":  derefIntStr(c.HomeOrder),
		}
	case "articles":
		art, err := a.articles.FindByID(id)
		if err != nil {
			slog.Error("load article for edit failed", "error", err, "article_id", id)
			return
		}
		if art == nil {
			return
		}
		st.editArticleID = art.ID
		st.articleForm = map[string]string{
			"title":           art.Title,
			"description":     derefStr(art.Description),
			"content":         art.Content,
			"category_id":     strconv.FormatInt(art.CategoryID, 10),
			"icon_name":       derefStr(art.IconName),
			"video_url":       derefStr(art.VideoURL),
			"is_quick_access": boolFlag(art.IsQuickAccess),
		}
	}
}

// renderPanel executes the panel template with fresh listings plus the
// given state. Used for both normal GETs and failed-write re-renders.
func (a *Admin) renderPanel(w http.ResponseWriter, r *http.Request, st panelState) {
	categories, err := a.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Tab":            st.tab,
		"Categories":     categories,
		"IconNames":      icons.Names(),
		"CategoryForm":   st.categoryForm,
		"ArticleForm":    st.articleForm,
		"EditCategoryID": st.editCategoryID,
		"EditArticleID":  st.editArticleID,
	}

	if st.tab == "articles" {
		articles, err := a.articles.List()
		if err != nil {
			slog.Error("list articles failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data["Articles"] = articles
	}

	// Recent invalidations are a debugging aid; a failed lookup just
	// hides the section.
	if entries, err := a.cacheLog.RecentEntries(10); err == nil {
		data["CacheLog"] = entries
	} else {
		slog.Warn("load cache invalidation log failed", "error", err)
	}

	status := st.status
	if status == 0 {
		status = http.StatusOK
	}

	a.renderer.PageStatus(w, r, "admin_panel", status, &render.PageData{
		Title: "Painel administrativo",
		Flash: st.flash,
		Data:  data,
	})
}

// ---------- category CRUD ----------

// CreateCategory handles the new-category form. The slug is derived from
// the title; a duplicate slug surfaces as a datastore error on the form.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	form := categoryFormValues(r)

	if msg := a.checkCategoryForm(form); msg != "" {
		a.renderPanel(w, r, panelState{
			tab: "categories", categoryForm: form,
			flash:  &render.Flash{Type: "error", Message: msg},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	c := categoryFromForm(form)
	created, err := a.categories.Create(c)
	if err != nil {
		slog.Error("create category failed", "error", err)
		a.renderPanel(w, r, panelState{
			tab: "categories", categoryForm: form,
			flash:  &render.Flash{Type: "error", Message: err.Error()},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	a.invalidatePages(r.Context(), cache.HomeKey(), cache.CategoryKey(created.Slug))
	a.cacheLog.Log("category", created.ID, "create")
	http.Redirect(w, r, "/admin?tab=categories", http.StatusSeeOther)
}

// UpdateCategory handles the edit-category form. The slug is re-derived
// from the (possibly changed) title, so the old category page is
// invalidated alongside the new one.
func (a *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	existing, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("find category failed", "error", err, "category_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.NotFound(w, r)
		return
	}

	form := categoryFormValues(r)
	if msg := a.checkCategoryForm(form); msg != "" {
		a.renderPanel(w, r, panelState{
			tab: "categories", categoryForm: form, editCategoryID: id,
			flash:  &render.Flash{Type: "error", Message: msg},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	c := categoryFromForm(form)
	c.ID = id

	if err := a.categories.Update(c); err != nil {
		slog.Error("update category failed", "error", err, "category_id", id)
		a.renderPanel(w, r, panelState{
			tab: "categories", categoryForm: form, editCategoryID: id,
			flash:  &render.Flash{Type: "error", Message: err.Error()},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	a.invalidatePages(r.Context(), cache.HomeKey(), cache.CategoryKey(existing.Slug), cache.CategoryKey(c.Slug))
	a.cacheLog.Log("category", id, "update")
	http.Redirect(w, r, "/admin?tab=categories", http.StatusSeeOther)
}

// DeleteCategory removes a category. Its articles are left in place with
// a dangling category reference; they stay reachable by direct URL.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	existing, err := a.categories.FindByID(id)
	if err != nil {
		slog.Error("find category failed", "error", err, "category_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.NotFound(w, r)
		return
	}

	if err := a.categories.Delete(id); err != nil {
		slog.Error("delete category failed", "error", err, "category_id", id)
		a.renderPanel(w, r, panelState{
			tab:    "categories",
			flash:  &render.Flash{Type: "error", Message: err.Error()},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	a.invalidatePages(r.Context(), cache.HomeKey(), cache.CategoryKey(existing.Slug))
	a.cacheLog.Log("category", id, "delete")
	http.Redirect(w, r, "/admin?tab=categories", http.StatusSeeOther)
}

// ---------- article CRUD ----------

// CreateArticle handles the new-article form. The category must exist at
// submission time — the check runs before any write.
func (a *Admin) CreateArticle(w http.ResponseWriter, r *http.Request) {
	form := articleFormValues(r)

	category, msg := a.checkArticleForm(form)
	if msg != "" {
		a.renderPanel(w, r, panelState{
			tab: "articles", articleForm: form,
			flash:  &render.Flash{Type: "error", Message: msg},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	art := articleFromForm(form, category.ID)
	created, err := a.articles.Create(art)
	if err != nil {
		slog.Error("create article failed", "error", err)
		a.renderPanel(w, r, panelState{
			tab: "articles", articleForm: form,
			flash:  &render.Flash{Type: "error", Message: err.Error()},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	a.invalidatePages(r.Context(), cache.HomeKey(), cache.ArticleKey(created.ID), cache.CategoryKey(category.Slug))
	a.cacheLog.Log("article", created.ID, "create")
	http.Redirect(w, r, "/admin?tab=articles", http.StatusSeeOther)
}

// UpdateArticle handles the edit-article form. Moving an article between
// categories invalidates both category pages.
func (a *Admin) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	existing, err := a.articles.FindByID(id)
	if err != nil {
		slog.Error("find article failed", "error", err, "article_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.NotFound(w, r)
		return
	}

	form := articleFormValues(r)
	category, msg := a.checkArticleForm(form)
	if msg != "" {
		a.renderPanel(w, r, panelState{
			tab: "articles", articleForm: form, editArticleID: id,
			flash:  &render.Flash{Type: "error", Message: msg},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	art := articleFromForm(form, category.ID)
	art.ID = id

	if err := a.articles.Update(art); err != nil {
		slog.Error("update article failed", "error", err, "article_id", id)
		a.renderPanel(w, r, panelState{
			tab: "articles", articleForm: form, editArticleID: id,
			flash:  &render.Flash{Type: "error", Message: err.Error()},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	keys := []string{cache.HomeKey(), cache.ArticleKey(id), cache.CategoryKey(category.Slug)}
	if existing.CategorySlug != "" && existing.CategorySlug != category.Slug {
		keys = append(keys, cache.CategoryKey(existing.CategorySlug))
	}
	a.invalidatePages(r.Context(), keys...)
	a.cacheLog.Log("article", id, "update")
	http.Redirect(w, r, "/admin?tab=articles", http.StatusSeeOther)
}

// DeleteArticle removes an article and invalidates the pages that listed it.
func (a *Admin) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	existing, err := a.articles.FindByID(id)
	if err != nil {
		slog.Error("find article failed", "error", err, "article_id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.NotFound(w, r)
		return
	}

	if err := a.articles.Delete(id); err != nil {
		slog.Error("delete article failed", "error", err, "article_id", id)
		a.renderPanel(w, r, panelState{
			tab:    "articles",
			flash:  &render.Flash{Type: "error", Message: err.Error()},
			status: http.StatusUnprocessableEntity,
		})
		return
	}

	keys := []string{cache.HomeKey(), cache.ArticleKey(id)}
	if existing.CategorySlug != "" {
		keys = append(keys, cache.CategoryKey(existing.CategorySlug))
	}
	a.invalidatePages(r.Context(), keys...)
	a.cacheLog.Log("article", id, "delete")
	http.Redirect(w, r, "/admin?tab=articles", http.StatusSeeOther)
}

// ---------- helpers ----------

// checkCategoryForm validates the category form, returning an error
// message or "".
func (a *Admin) checkCategoryForm(form map[string]string) string {
	if msg := validateCategory(form["title"], form["description"]); msg != "" {
		return msg
	}
	if !icons.Valid(form["icon_name"]) {
		return "Ícone inválido."
	}
	if form["home_order"] != "" {
		if _, err := strconv.Atoi(form["home_order"]); err != nil {
			return "A ordem deve ser um número."
		}
	}
	return ""
}

// checkArticleForm validates the article form and resolves its category.
// Returns the category on success, or an error message.
func (a *Admin) checkArticleForm(form map[string]string) (*models.Category, string) {
	if msg := validateArticle(form["title"], form["description"], form["content"], form["category_id"], form["video_url"]); msg != "" {
		return nil, msg
	}
	if !icons.Valid(form["icon_name"]) {
		return nil, "Ícone inválido."
	}

	categoryID, err := strconv.ParseInt(form["category_id"], 10, 64)
	if err != nil {
		return nil, "Selecione uma categoria válida."
	}
	category, err := a.categories.FindByID(categoryID)
	if err != nil {
		slog.Error("resolve article category failed", "error", err, "category_id", categoryID)
		return nil, "Não foi possível verificar a categoria."
	}
	if category == nil {
		return nil, "Selecione uma categoria válida."
	}
	return category, ""
}

// invalidatePages removes the given page keys from the cache, if configured.
func (a *Admin) invalidatePages(ctx context.Context, keys ...string) {
	if a.pageCache == nil {
		return
	}
	for _, key := range keys {
		a.pageCache.Invalidate(ctx, key)
	}
}

// categoryFormValues collects the posted category form fields.
func categoryFormValues(r *http.Request) map[string]string {
	return map[string]string{
		"title":       r.FormValue("title"),
		"description": r.FormValue("description"),
		"icon_name":   r.FormValue("icon_name"),
		"home_order":  strings.TrimSpace(r.FormValue("home_order")),
	}
}

// articleFormValues collects the posted article form fields.
func articleFormValues(r *http.Request) map[string]string {
	return map[string]string{
		"title":           r.FormValue("title"),
		"description":     r.FormValue("description"),
		"content":         r.FormValue("content"),
		"category_id":     strings.TrimSpace(r.FormValue("category_id")),
		"icon_name":       r.FormValue("icon_name"),
		"video_url":       strings.TrimSpace(r.FormValue("video_url")),
		"is_quick_access": r.FormValue("is_quick_access"),
	}
}

// categoryFromForm builds a Category from validated form values. The slug
// is always derived from the title.
func categoryFromForm(form map[string]string) *models.Category {
	title := strings.TrimSpace(form["title"])
	c := &models.Category{
		Title:       title,
		Slug:        slug.Generate(title),
		Description: optStr(form["description"]),
		IconName:    optStr(form["icon_name"]),
	}
	if form["home_order"] != "" {
		if n, err := strconv.Atoi(form["home_order"]); err == nil {
			c.HomeOrder = &n
		}
	}
	return c
}

// articleFromForm builds an Article from validated form values.
func articleFromForm(form map[string]string, categoryID int64) *models.Article {
	return &models.Article{
		Title:         strings.TrimSpace(form["title"]),
		Content:       form["content"],
		Description:   optStr(form["description"]),
		CategoryID:    categoryID,
		IconName:      optStr(form["icon_name"]),
		VideoURL:      optStr(form["video_url"]),
		IsQuickAccess: form["is_quick_access"] != "",
	}
}

// optStr returns nil for blank strings, a pointer otherwise.
func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// derefStr returns the pointed-to string, or "" for nil.
func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// derefIntStr formats a *int for a form value, "" for nil.
func derefIntStr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// boolFlag renders a bool as a checkbox form value.
func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return ""
}
