// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search implements the in-memory article title filter used by
// the public pages. It is a pure case-insensitive substring match over
// an already-fetched list — no ranking, no datastore round trip.
package search

import (
	"strings"

	"helpcenter/internal/models"
)

// Filter returns the articles whose title contains the case-folded query
// as a substring, preserving input order. A blank query returns the input
// unchanged.
func Filter(articles []models.Article, query string) []models.Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return articles
	}

	var matched []models.Article
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), q) {
			matched = append(matched, a)
		}
	}
	return matched
}
