// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"helpcenter/internal/models"
)

// ArticleStore manages articles in the database.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore returns a new ArticleStore.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, title, content, description, category_id, icon_name, video_url, is_quick_access, view_count, created_at, updated_at`

// scanArticle scans a row into an Article struct.
func scanArticle(row scanner) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Description, &a.CategoryID,
		&a.IconName, &a.VideoURL, &a.IsQuickAccess, &a.ViewCount,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all articles ordered by title ascending.
func (s *ArticleStore) List() ([]models.Article, error) {
	return s.list(nil)
}

// ListByCategory returns the articles of one category, title ascending.
// Every article of the category appears exactly once.
func (s *ArticleStore) ListByCategory(categoryID int64) ([]models.Article, error) {
	return s.list(sq.Eq{"category_id": categoryID})
}

// ListQuickAccess returns the articles promoted to the homepage, title
// ascending. The parent category is joined so the icon resolver can fall
// back on the category label when the article stores no icon of its own.
func (s *ArticleStore) ListQuickAccess() ([]models.Article, error) {
	query, args, err := articleJoinSelect().
		Where(sq.Eq{"a.is_quick_access": true}).
		OrderBy("a.title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list quick access: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quick access: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanJoinedArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quick access article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// list builds and runs a filtered article select. A nil filter lists everything.
func (s *ArticleStore) list(filter sq.Eq) ([]models.Article, error) {
	builder := psql.
		Select(articleColumns).
		From("articles").
		OrderBy("title ASC")
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list articles: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// articleJoinSelect builds the select that carries the parent category's
// title and slug alongside the article columns. The join is a LEFT JOIN
// with COALESCE so a dangling category_id still yields a row, with empty
// category fields.
func articleJoinSelect() sq.SelectBuilder {
	return psql.
		Select(
			"a.id", "a.title", "a.content", "a.description", "a.category_id",
			"a.icon_name", "a.video_url", "a.is_quick_access", "a.view_count",
			"a.created_at", "a.updated_at",
			"COALESCE(c.title, '') AS category_title",
			"COALESCE(c.slug, '') AS category_slug",
		).
		From("articles a").
		LeftJoin("categories c ON c.id = a.category_id")
}

// scanJoinedArticle scans a row produced by articleJoinSelect.
func scanJoinedArticle(row scanner) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Description, &a.CategoryID,
		&a.IconName, &a.VideoURL, &a.IsQuickAccess, &a.ViewCount,
		&a.CreatedAt, &a.UpdatedAt,
		&a.CategoryTitle, &a.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID retrieves an article by ID along with its parent category's
// title and slug for breadcrumb display. Returns nil if no article matches.
func (s *ArticleStore) FindByID(id int64) (*models.Article, error) {
	query, args, err := articleJoinSelect().
		Where(sq.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find article by id: %w", err)
	}

	a, err := scanJoinedArticle(s.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// Create inserts a new article and returns it with datastore-assigned fields.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	query, args, err := psql.
		Insert("articles").
		Columns("title", "content", "description", "category_id", "icon_name", "video_url", "is_quick_access").
		Values(a.Title, a.Content, a.Description, a.CategoryID, a.IconName, a.VideoURL, a.IsQuickAccess).
		Suffix("RETURNING " + articleColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create article: %w", err)
	}

	result, err := scanArticle(s.db.QueryRow(query, args...))
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return result, nil
}

// Update modifies an existing article by ID.
func (s *ArticleStore) Update(a *models.Article) error {
	query, args, err := psql.
		Update("articles").
		Set("title", a.Title).
		Set("content", a.Content).
		Set("description", a.Description).
		Set("category_id", a.CategoryID).
		Set("icon_name", a.IconName).
		Set("video_url", a.VideoURL).
		Set("is_quick_access", a.IsQuickAccess).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update article: %w", err)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by ID.
func (s *ArticleStore) Delete(id int64) error {
	query, args, err := psql.
		Delete("articles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete article: %w", err)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// IncrementViews calls the increment_article_views stored procedure.
// Callers fire it without awaiting confirmation; a transient failure
// loses at most one count. A reload re-increments — there is no
// per-visitor de-duplication.
func (s *ArticleStore) IncrementViews(id int64) error {
	if _, err := s.db.Exec(`SELECT increment_article_views($1)`, id); err != nil {
		return fmt.Errorf("increment article views: %w", err)
	}
	return nil
}
