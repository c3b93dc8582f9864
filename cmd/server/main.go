package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nexusnews/nexus/internal/api"
	"github.com/nexusnews/nexus/internal/cache"
	"github.com/nexusnews/nexus/internal/config"
	"github.com/nexusnews/nexus/internal/feed"
	"github.com/nexusnews/nexus/internal/logger"
	"github.com/nexusnews/nexus/internal/registry"
	"github.com/nexusnews/nexus/internal/scraper"
	"github.com/nexusnews/nexus/internal/translate"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Msg("Starting news aggregation service...")

	// Translation memo cache: Redis when configured and reachable,
	// in-memory otherwise. Feed items themselves are never cached.
	var translationCache cache.TranslationCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, using in-memory translation cache")
			translationCache = cache.NewMemoryCache()
		} else {
			translationCache = redisCache
		}
	} else {
		translationCache = cache.NewMemoryCache()
	}
	defer func() {
		if err := translationCache.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing translation cache")
		}
	}()

	// Wire the aggregation pipeline
	reg := registry.Default()
	translator := translate.New(
		translate.WithCache(translationCache, cfg.CacheTTL),
		translate.WithLimits(cfg.TranslateMaxItems, cfg.TranslatePrefixChars),
	)
	fetcher := feed.NewFetcher(cfg.FeedTimeout)
	normalizer := feed.NewNormalizer(cfg.FreshnessWindow, cfg.SummaryMaxChars)
	aggregator := feed.NewAggregator(reg, fetcher, normalizer, translator, cfg.ItemsPerFeed)

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
	})

	handlers := api.NewHandlers(cfg, reg, aggregator, scraper.New(), translator)
	api.SetupRoutes(app, handlers)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
