package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/neexbeast/wayfarer-admin/internal/api"
	"github.com/neexbeast/wayfarer-admin/internal/cache"
	"github.com/neexbeast/wayfarer-admin/internal/config"
	"github.com/neexbeast/wayfarer-admin/internal/observability"
	"github.com/neexbeast/wayfarer-admin/internal/pricing"
	"github.com/neexbeast/wayfarer-admin/internal/recommend"
	"github.com/neexbeast/wayfarer-admin/internal/storage"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

func main() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := observability.NewLogger(cfg.Log.Format, cfg.Log.Level)

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()

	// Connect to PostgreSQL.
	pool, err := storage.Connect(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	// Run migrations.
	if err := storage.RunMigrations(ctx, pool, cfg.Database.MigrationsDir, log); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info().Msg("migrations applied")

	// Connect to Redis.
	redisClient, err := cache.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	// Wire the pricing chain: provider client, shared offer cache, resolver, batching.
	repo := storage.NewRepository(pool)
	offerCache := cache.NewCache(redisClient, cfg.Redis.ExploreTTL)
	amadeus := pricing.NewAmadeusClient(cfg.Provider.BaseURL, cfg.Provider.ClientID, cfg.Provider.ClientSecret, cfg.Provider.RPS)
	explorer := pricing.NewCachedExplorer(amadeus, offerCache, log)
	resolver := pricing.NewResolver(explorer, cfg.Provider.Currency, log)
	batch := pricing.NewBatchResolver(resolver, pricing.BatchConfig{
		Size:     cfg.Batch.Size,
		Delay:    cfg.Batch.Delay,
		Currency: cfg.Provider.Currency,
	}, log)

	catalog := theme.Default()
	remote := recommend.NewRemoteTier(cfg.Backend.URL, cfg.Backend.Timeout, recommend.BreakerSettings{
		OpenTimeout: cfg.Backend.BreakerTimeout,
		TripAfter:   cfg.Backend.BreakerTripAfter,
	}, log)
	cascade := recommend.NewCascade(log, recommend.Options{
		DefaultMaxResults: cfg.Recommend.DefaultMaxResults,
		MaxResults:        cfg.Recommend.MaxResults,
	},
		remote,
		recommend.NewProviderTier(catalog, batch, cfg.Recommend.MinScore, cfg.Provider.Enabled),
		recommend.NewStaticTier(catalog, cfg.Recommend.MinScore, cfg.Provider.Currency),
	)

	log.Info().
		Bool("backend", cfg.Backend.URL != "").
		Bool("provider", cfg.Provider.Enabled).
		Int("catalog_cities", len(catalog.Cities())).
		Msg("recommendation tiers configured")

	reg := observability.InitRegistry()
	handlers := api.NewHandlers(cascade, catalog, repo, log)
	router := api.NewRouter(handlers, api.RouterConfig{
		Token:              cfg.Server.BearerToken,
		CORSOrigins:        cfg.Server.CORSOrigins,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		Metrics:            observability.MetricsHandler(reg),
	}, repo, offerCache, log)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("recover", r).Msg("server goroutine panicked")
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	handlers.Wait()

	log.Info().Msg("server shut down cleanly")
	return nil
}
