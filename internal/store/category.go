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

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, title, slug, description, icon_name, home_order, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(row scanner) (*models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID, &c.Title, &c.Slug, &c.Description,
		&c.IconName, &c.HomeOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered for the landing page (home_order
// ascending, nulls last, then title) with per-category article counts.
func (s *CategoryStore) List() ([]models.Category, error) {
	query, args, err := psql.
		Select(
			"c.id", "c.title", "c.slug", "c.description", "c.icon_name",
			"c.home_order", "c.created_at", "c.updated_at",
			"COUNT(a.id) AS article_count",
		).
		From("categories c").
		LeftJoin("articles a ON a.category_id = c.id").
		GroupBy("c.id").
		OrderBy("c.home_order ASC NULLS LAST", "c.title ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(
			&c.ID, &c.Title, &c.Slug, &c.Description, &c.IconName,
			&c.HomeOrder, &c.CreatedAt, &c.UpdatedAt,
			&c.ArticleCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id int64) (*models.Category, error) {
	return s.findOne(sq.Eq{"id": id}, "find category by id")
}

// FindBySlug retrieves a category by its slug, the sole routing key for
// category pages. Returns nil if not found.
func (s *CategoryStore) FindBySlug(slug string) (*models.Category, error) {
	return s.findOne(sq.Eq{"slug": slug}, "find category by slug")
}

// findOne executes a single-row category lookup with the given filter.
func (s *CategoryStore) findOne(filter sq.Eq, op string) (*models.Category, error) {
	query, args, err := psql.
		Select(categoryColumns).
		From("categories").
		Where(filter).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	c, err := scanCategory(s.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// Create inserts a new category and returns it with datastore-assigned fields.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	query, args, err := psql.
		Insert("categories").
		Columns("title", "slug", "description", "icon_name", "home_order").
		Values(c.Title, c.Slug, c.Description, c.IconName, c.HomeOrder).
		Suffix("RETURNING " + categoryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create category: %w", err)
	}

	result, err := scanCategory(s.db.QueryRow(query, args...))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies an existing category by ID.
func (s *CategoryStore) Update(c *models.Category) error {
	query, args, err := psql.
		Update("categories").
		Set("title", c.Title).
		Set("slug", c.Slug).
		Set("description", c.Description).
		Set("icon_name", c.IconName).
		Set("home_order", c.HomeOrder).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update category: %w", err)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Articles referencing it are left
// untouched — there is no cascade and no reassignment.
func (s *CategoryStore) Delete(id int64) error {
	query, args, err := psql.
		Delete("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete category: %w", err)
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
