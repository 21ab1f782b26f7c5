package migrations

import "embed"

// FS contains embedded SQLite migrations for the round ledger.
//
//go:embed *.sql
var FS embed.FS
