// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/murkotick/gift-finder-service/internal/pkg/logx"
	"github.com/murkotick/gift-finder-service/internal/pkg/redisx"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
)

// AppConfig is sourced from environment variables, optionally seeded from a
// .env file for local runs.
type AppConfig struct {
	Env      string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	GRPCAddr string `envconfig:"GRPC_ADDR" default:":50051"`

	// Store
	StoreBackend    string        `envconfig:"STORE_BACKEND" default:"sqlite"`
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"public/database.db"`
	DatabaseURL     string        `envconfig:"DATABASE_URL"`
	SpannerDatabase string        `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/emulator-instance/databases/test-db"`
	QueryTimeout    time.Duration `envconfig:"QUERY_TIMEOUT" default:"5s"`

	// Infrastructure
	Redis              redisx.Config
	CategoriesCacheTTL time.Duration `envconfig:"CATEGORIES_CACHE_TTL" default:"10m"`
}

// Load reads the given .env files (".env" when none are named; missing files
// are skipped) and then processes the environment.
func Load(envFiles ...string) (*AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if _, err := cfg.Backend(); err != nil {
		return nil, err
	}
	if cfg.QueryTimeout < 0 {
		return nil, fmt.Errorf("QUERY_TIMEOUT must not be negative, got %s", cfg.QueryTimeout)
	}
	return &cfg, nil
}

func (c *AppConfig) Backend() (store.Backend, error) {
	return store.ParseBackend(c.StoreBackend)
}

func (c *AppConfig) Environment() logx.Environment {
	return logx.ParseEnvironment(c.Env)
}
