// Package migrations holds the goose SQL migrations for the trip planner
// schema and applies them at server startup and in integration tests.
package migrations

import "embed"

// FS holds the *.sql migration files, numbered in apply order.
//
//go:embed *.sql
var FS embed.FS
