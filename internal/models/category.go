// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category represents a help-center category. Articles reference a
// category by numeric ID; the slug is the sole routing key for the
// public category page.
type Category struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	IconName    *string   `json:"icon_name,omitempty"`
	HomeOrder   *int      `json:"home_order,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Virtual field populated by store list queries.
	ArticleCount int `json:"article_count"`
}
