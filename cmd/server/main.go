package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"github.com/murkotick/gift-finder-service/internal/app/gift/cache"
	contracts "github.com/murkotick/gift-finder-service/internal/app/gift/contracts"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/list_categories"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/search_gifts"
	"github.com/murkotick/gift-finder-service/internal/config"
	"github.com/murkotick/gift-finder-service/internal/pkg/logx"
	"github.com/murkotick/gift-finder-service/internal/pkg/store"
	grpcgift "github.com/murkotick/gift-finder-service/internal/transport/grpc/gift"
	httpgift "github.com/murkotick/gift-finder-service/internal/transport/http/gift"
)

const shutdownGrace = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config")
	}
	logx.Init(logx.Options{Environment: cfg.Environment()})
	if cfg.Environment().IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logx.Info().Msg("shutdown signal received")
		cancel()
	}()

	// Bind both ports before the store is opened so a taken port fails fast.
	httpLis, grpcLis, err := listen(cfg.HTTPAddr, cfg.GRPCAddr)
	if err != nil {
		logx.Fatal().Err(err).Msg("listen")
	}

	readModel, closer, err := openReadModel(ctx, cfg)
	if err != nil {
		_ = httpLis.Close()
		_ = grpcLis.Close()
		logx.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("open store")
	}
	defer closer.Close()

	var categoryCache contracts.CategoryCache
	if cfg.Redis.Enabled() {
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			logx.Warn().Err(err).Msg("redis unavailable, category cache disabled")
		} else {
			defer rdb.Close()
			categoryCache = cache.NewRedisCategoryCache(rdb, cfg.CategoriesCacheTTL)
		}
	}

	searchH := search_gifts.NewHandler(readModel, cfg.QueryTimeout)
	categoriesH := list_categories.NewHandler(readModel, categoryCache, cfg.QueryTimeout)

	// HTTP server
	router := httpgift.NewRouter(httpgift.NewHandler(httpgift.Queries{Search: searchH, Categories: categoriesH}))
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logx.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpSrv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Error().Err(err).Msg("http serve")
			cancel()
		}
	}()

	// gRPC server
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcgift.LoggingInterceptor()))
	grpcgift.RegisterGiftServiceServer(grpcSrv, grpcgift.NewHandler(grpcgift.Queries{Search: searchH, Categories: categoriesH}))

	go func() {
		logx.Info().Str("addr", cfg.GRPCAddr).Msg("gRPC server listening")
		if err := grpcSrv.Serve(grpcLis); err != nil {
			logx.Error().Err(err).Msg("grpc serve")
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logx.Warn().Err(err).Msg("http shutdown")
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcSrv.Stop()
	}

	logx.Info().Msg("server stopped")
}

// listen binds the HTTP and gRPC addresses. On failure nothing stays bound.
func listen(httpAddr, grpcAddr string) (net.Listener, net.Listener, error) {
	httpLis, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen http %s: %w", httpAddr, err)
	}
	grpcLis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		_ = httpLis.Close()
		return nil, nil, fmt.Errorf("listen grpc %s: %w", grpcAddr, err)
	}
	return httpLis, grpcLis, nil
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// openReadModel connects to the configured backend. The returned closer
// releases the connection pool.
func openReadModel(ctx context.Context, cfg *config.AppConfig) (contracts.ReadModel, io.Closer, error) {
	backend, err := cfg.Backend()
	if err != nil {
		return nil, nil, err
	}

	switch backend {
	case store.BackendPostgres:
		pool, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return queries.NewPgxReadModel(pool), closerFunc(pool.Close), nil
	case store.BackendSpanner:
		client, err := store.OpenSpanner(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, nil, err
		}
		return queries.NewSpannerReadModel(client), closerFunc(client.Close), nil
	default:
		db, err := store.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return queries.NewSQLReadModel(db), db, nil
	}
}
