// Package migrations embeds schema migrations for every supported sql data source.
package migrations

import "embed"

// Postgres holds migrations for postgresql, files are located in postgres directory
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds migrations for sqlite, files are located in sqlite directory
//
//go:embed sqlite/*.sql
var SQLite embed.FS
