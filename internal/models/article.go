// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Article represents a single help article. Content is Markdown and is
// converted to HTML at render time.
//
// CategoryID has no database-level foreign key: deleting a category leaves
// its articles pointing at a missing ID. The public pages tolerate the
// dangling reference (breadcrumb and category listing simply omit it).
type Article struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Description   *string   `json:"description,omitempty"`
	CategoryID    int64     `json:"category_id"`
	IconName      *string   `json:"icon_name,omitempty"`
	VideoURL      *string   `json:"video_url,omitempty"`
	IsQuickAccess bool      `json:"is_quick_access"`
	ViewCount     int       `json:"view_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Virtual fields populated by store join queries, used for
	// breadcrumbs and cache invalidation. Empty when the parent
	// category no longer exists.
	CategoryTitle string `json:"category_title,omitempty"`
	CategorySlug  string `json:"category_slug,omitempty"`
}

// HasCategory reports whether the article's parent category was resolved
// by the originating query (false for dangling references).
func (a Article) HasCategory() bool {
	return a.CategorySlug != ""
}
