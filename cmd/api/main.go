package main

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/esonge/storefront-backend/api/routes"
	"github.com/esonge/storefront-backend/internal/auth"
	"github.com/esonge/storefront-backend/internal/cart"
	"github.com/esonge/storefront-backend/internal/catalog"
	"github.com/esonge/storefront-backend/internal/filters"
	"github.com/esonge/storefront-backend/internal/wishlist"
	"github.com/esonge/storefront-backend/pkg/config"
	"github.com/esonge/storefront-backend/pkg/db"
	"github.com/esonge/storefront-backend/pkg/env"
	"github.com/esonge/storefront-backend/pkg/logger"
	"github.com/esonge/storefront-backend/pkg/metrics"
	"github.com/esonge/storefront-backend/pkg/redis"
	"github.com/esonge/storefront-backend/pkg/storage"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	snaps, cleanup, err := buildSnapshotStore(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap snapshot storage", err)
		os.Exit(1)
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	catalogSvc := catalog.NewService()

	cartSvc, err := cart.NewService(ctx, cart.ServiceParams{
		Snapshots: snaps,
		Logger:    logg,
		Metrics:   storeMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistSvc, err := wishlist.NewService(ctx, wishlist.ServiceParams{
		Snapshots: snaps,
		Logger:    logg,
		Metrics:   storeMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create wishlist service", err)
		os.Exit(1)
	}

	authSvc, err := auth.NewService(ctx, auth.ServiceParams{
		Snapshots:  snaps,
		Logger:     logg,
		Metrics:    storeMetrics,
		LoginDelay: cfg.Auth.LoginDelay,
		DemoEmail:  cfg.Auth.DemoEmail,
	})
	if err != nil {
		logg.Error(ctx, "failed to create auth service", err)
		os.Exit(1)
	}

	filterSvc := filters.NewService(filters.ServiceParams{
		Logger:       logg,
		Metrics:      storeMetrics,
		ItemsPerPage: cfg.Catalog.ItemsPerPage,
	})

	addr := ":" + env.Get("PORT", cfg.App.Port)

	ctx = logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Driver,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:      cfg,
			Logger:      logg,
			Snapshots:   snaps,
			Registry:    registry,
			HTTPMetrics: httpMetrics,
			Catalog:     catalogSvc,
			Cart:        cartSvc,
			Wishlist:    wishlistSvc,
			Auth:        authSvc,
			Filters:     filterSvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// buildSnapshotStore selects the persistence backend for the store snapshots.
// The returned cleanup closes any underlying connection.
func buildSnapshotStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (storage.Snapshots, func(), error) {
	noop := func() {}

	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		dbClient, err := db.New(ctx, cfg.Storage.Driver, cfg.DB, logg)
		if err != nil {
			return nil, noop, err
		}
		store, err := storage.NewGormStore(dbClient.DB())
		if err != nil {
			_ = dbClient.Close()
			return nil, noop, err
		}
		return store, func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(ctx, "error closing database", err)
			}
		}, nil

	case config.StorageDriverRedis:
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, noop, err
		}
		store, err := storage.NewRedisStore(redisClient)
		if err != nil {
			_ = redisClient.Close()
			return nil, noop, err
		}
		return store, func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(ctx, "error closing redis", err)
			}
		}, nil

	default:
		return storage.NewMemory(), noop, nil
	}
}
