// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the datastore layer: one store per entity, each a
// thin wrapper building filtered/ordered queries with squirrel and
// executing them on *sql.DB. Stores return nil (not an error) when a
// single-row lookup matches nothing.
package store

import sq "github.com/Masterminds/squirrel"

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface{ Scan(...any) error }
