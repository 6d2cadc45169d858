package main

import (
	"context"
	"flag"
	"time"

	"github.com/murkotick/gift-finder-service/internal/config"
	"github.com/murkotick/gift-finder-service/internal/pkg/logx"
	"github.com/murkotick/gift-finder-service/internal/pkg/seed"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
	"github.com/murkotick/gift-finder-service/migrations"
)

// A tiny migration helper that applies the embedded catalog schema to the
// configured store (STORE_BACKEND).
//
// Usage (Spanner emulator):
//
//	set SPANNER_EMULATOR_HOST=localhost:9010
//	set STORE_BACKEND=spanner
//	set SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate -create -seed catalog.json
func main() {
	create := flag.Bool("create", false, "create the Spanner instance and database when missing")
	seedPath := flag.String("seed", "", "JSON catalog to load after the schema is applied")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(logx.Options{Environment: cfg.Environment()})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	backend, err := cfg.Backend()
	if err != nil {
		logx.Fatal().Err(err).Msg("store backend")
	}
	ddl, err := migrations.For(string(backend))
	if err != nil {
		logx.Fatal().Err(err).Msg("schema")
	}

	switch backend {
	case store.BackendSpanner:
		if *create {
			if err := store.EnsureSpannerDatabase(ctx, cfg.SpannerDatabase); err != nil {
				logx.Fatal().Err(err).Msg("ensure spanner database")
			}
		}
		stmts := migrations.SplitStatements(ddl)
		if err := store.ApplySpannerDDL(ctx, cfg.SpannerDatabase, stmts); err != nil {
			logx.Fatal().Err(err).Msg("apply spanner DDL")
		}
		logx.Info().Int("statements", len(stmts)).Str("database", cfg.SpannerDatabase).Msg("schema applied")

		if *seedPath != "" {
			client, err := store.OpenSpanner(ctx, cfg.SpannerDatabase)
			if err != nil {
				logx.Fatal().Err(err).Msg("open spanner")
			}
			defer client.Close()
			loadSeed(*seedPath, func(c seed.Catalog) error { return seed.Spanner(ctx, client, c) })
		}

	case store.BackendPostgres:
		pool, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logx.Fatal().Err(err).Msg("open postgres")
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, ddl); err != nil {
			logx.Fatal().Err(err).Msg("apply postgres DDL")
		}
		logx.Info().Msg("schema applied")

		if *seedPath != "" {
			loadSeed(*seedPath, func(c seed.Catalog) error { return seed.Postgres(ctx, pool, c) })
		}

	default:
		db, err := store.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			logx.Fatal().Err(err).Msg("open sqlite")
		}
		defer db.Close()
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			logx.Fatal().Err(err).Msg("apply sqlite DDL")
		}
		logx.Info().Str("path", cfg.SQLitePath).Msg("schema applied")

		if *seedPath != "" {
			loadSeed(*seedPath, func(c seed.Catalog) error { return seed.SQL(ctx, db, c) })
		}
	}
}

func loadSeed(path string, apply func(seed.Catalog) error) {
	c, err := seed.LoadFile(path)
	if err != nil {
		logx.Fatal().Err(err).Msg("load seed")
	}
	if err := apply(c); err != nil {
		logx.Fatal().Err(err).Str("path", path).Msg("seed catalog")
	}
	logx.Info().Int("categories", len(c.Categories)).Int("products", len(c.Products)).Msg("catalog seeded")
}
