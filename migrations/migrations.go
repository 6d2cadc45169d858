// Package migrations embeds the catalog schema for each supported backend.
package migrations

import (
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed sqlite.sql
	SQLite string

	//go:embed postgres.sql
	Postgres string

	//go:embed spanner.sql
	Spanner string
)

// For returns the schema for a backend name ("sqlite", "postgres", "spanner").
func For(backend string) (string, error) {
	switch backend {
	case "sqlite":
		return SQLite, nil
	case "postgres":
		return Postgres, nil
	case "spanner":
		return Spanner, nil
	default:
		return "", fmt.Errorf("no schema for backend %q", backend)
	}
}

// SplitStatements splits a schema file on ';' and drops empty statements.
// Spanner's admin API takes one DDL statement per entry.
func SplitStatements(sql string) []string {
	// Normalize line endings for Windows-authored files.
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
