// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "helpcenter/internal/models"

// CategoryArticles pairs a category with its articles for sidebar and
// home display.
type CategoryArticles struct {
	Category models.Category
	Articles []models.Article
}

// GroupByCategory partitions articles under their parent categories.
// Category order follows the categories slice (home_order); article order
// within a group follows the articles slice (title ascending from the
// underlying query). Articles whose category_id matches no category —
// dangling references left by a category deletion — are silently dropped.
func GroupByCategory(categories []models.Category, articles []models.Article) []CategoryArticles {
	byCategory := make(map[int64][]models.Article, len(categories))
	for _, a := range articles {
		byCategory[a.CategoryID] = append(byCategory[a.CategoryID], a)
	}

	groups := make([]CategoryArticles, 0, len(categories))
	for _, c := range categories {
		groups = append(groups, CategoryArticles{
			Category: c,
			Articles: byCategory[c.ID],
		})
	}
	return groups
}
