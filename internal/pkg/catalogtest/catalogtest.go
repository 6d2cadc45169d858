// Package catalogtest opens seeded catalog stores for tests.
package catalogtest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/murkotick/gift-finder-service/internal/pkg/seed"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
	"github.com/murkotick/gift-finder-service/migrations"
)

type (
	Category = seed.Category
	Product  = seed.Product
	Catalog  = seed.Catalog
)

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// OpenSQLite creates a migrated SQLite database in a temp dir, seeds c and
// closes the database when the test ends.
func OpenSQLite(t testing.TB, c Catalog) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := store.OpenSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, migrations.SQLite)
	require.NoError(t, err)
	require.NoError(t, seed.SQL(ctx, db, c))
	return db
}
