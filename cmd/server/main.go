// Package main is the entry point for the airport lookup service.
//
//	@title						Airport Lookup API
//	@version					1.0.0
//	@description				Incremental airport search over a reference database with relevance ranking and a best-effort response cache.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/charter-ops/airport-lookup-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/charter-ops/airport-lookup-service/docs"

	// Application layers
	"github.com/charter-ops/airport-lookup-service/internal/adapter/cache"
	airporthttp "github.com/charter-ops/airport-lookup-service/internal/adapter/http"
	"github.com/charter-ops/airport-lookup-service/internal/adapter/http/middleware"
	"github.com/charter-ops/airport-lookup-service/internal/adapter/postgres"
	"github.com/charter-ops/airport-lookup-service/internal/config"
	"github.com/charter-ops/airport-lookup-service/internal/infrastructure/retry"
	"github.com/charter-ops/airport-lookup-service/internal/infrastructure/timeutil"
	"github.com/charter-ops/airport-lookup-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	connectTimeout  = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("cache_driver", cfg.Cache.Driver).
		Msg("Configuration loaded")

	// Connect to the airport reference database
	pool, err := connectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	// Open the response cache backend
	kv, err := openCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open response cache")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing response cache")
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, pool, kv)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// connectDatabase opens the pgx pool and waits for the database to answer a
// ping. The retry loop covers the common case of the database container still
// booting when the service starts; per-request queries are never retried.
func connectDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	retryCfg := retry.ConnectConfig
	retryCfg.MaxAttempts = cfg.Database.ConnectAttempts

	err = retry.Do(ctx, func() error {
		if pingErr := pool.Ping(ctx); pingErr != nil {
			log.Warn().Err(pingErr).Msg("Database not ready, retrying")
			return pingErr
		}
		return nil
	}, retryCfg)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().Msg("Connected to database")
	return pool, nil
}

// openCache builds the configured cache backend.
func openCache(cfg *config.Config) (cache.KV, error) {
	switch cfg.Cache.Driver {
	case "badger":
		return cache.OpenBadger(cache.BadgerOptions{
			Path:     cfg.Cache.Path,
			ReadOnly: cfg.Cache.ReadOnly,
		}, log.Logger)
	case "memory":
		return cache.NewMemoryCache(timeutil.NewRealClock()), nil
	default:
		return cache.Noop{}, nil
	}
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, pool *pgxpool.Pool, kv cache.KV) {
	store := postgres.NewAirportStore(pool)
	responseCache := cache.NewBestEffort(kv, log.Logger)

	ucConfig := &usecase.Config{
		HomeCountry:    cfg.Search.HomeCountry,
		OverfetchLimit: cfg.Search.OverfetchLimit,
		CacheTTL:       cfg.Cache.TTL,
	}
	searchUseCase := usecase.NewAirportSearchUseCase(store, responseCache, ucConfig, log.Logger)

	handler := airporthttp.NewAirportHandler(searchUseCase)
	airporthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
