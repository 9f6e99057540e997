package migrations

import "embed"

// FS contains embedded SQLite migrations for Tomekeeper storage.
//
//go:embed *.sql
var FS embed.FS
