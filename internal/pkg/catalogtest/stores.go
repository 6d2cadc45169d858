package catalogtest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/gift-finder-service/internal/pkg/seed"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
	"github.com/murkotick/gift-finder-service/migrations"
)

// uniqueName keeps to 30 characters, the Spanner database id limit.
func uniqueName(prefix string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + id[:30-len(prefix)]
}

// OpenPostgres migrates and seeds c into a fresh schema of the database at
// DATABASE_URL. The test is skipped when DATABASE_URL is unset.
func OpenPostgres(t testing.TB, c Catalog) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	admin, err := store.OpenPostgres(ctx, url)
	require.NoError(t, err)

	schema := uniqueName("t_")
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	})

	cfg, err := pgxpool.ParseConfig(url)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = schema

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, migrations.Postgres)
	require.NoError(t, err)
	require.NoError(t, seed.Postgres(ctx, pool, c))
	return pool
}

// OpenSpanner creates a uniquely named database on the emulator, applies the
// schema and seeds c. The test is skipped unless SPANNER_EMULATOR_HOST is set.
func OpenSpanner(t testing.TB, c Catalog) *spanner.Client {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	db := fmt.Sprintf("projects/%s/instances/%s/databases/%s",
		env("SPANNER_PROJECT_ID", "test-project"),
		env("SPANNER_INSTANCE_ID", "emulator-instance"),
		uniqueName("gifts_"))

	require.NoError(t, store.EnsureSpannerDatabase(ctx, db))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_ = store.DropSpannerDatabase(ctx, db)
	})
	require.NoError(t, store.ApplySpannerDDL(ctx, db, migrations.SplitStatements(migrations.Spanner)))

	client, err := store.OpenSpanner(ctx, db)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	require.NoError(t, seed.Spanner(ctx, client, c))
	return client
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
