// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	App      AppConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Search   SearchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// DatabaseConfig holds settings for the airport reference database.
type DatabaseConfig struct {
	URL             string `env:"DATABASE_URL"`
	ConnectAttempts int    `env:"DATABASE_CONNECT_ATTEMPTS" envDefault:"5"`
}

// CacheConfig holds response cache settings.
//
// The cache is best-effort: a misconfigured or unavailable cache must never
// take search down, so the driver "none" is a valid production choice.
type CacheConfig struct {
	Driver   string        `env:"CACHE_DRIVER" envDefault:"badger"`
	Path     string        `env:"CACHE_PATH" envDefault:"./data/cache"`
	ReadOnly bool          `env:"CACHE_READ_ONLY" envDefault:"false"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"168h"`
}

// SearchConfig holds relevance-ranking settings.
type SearchConfig struct {
	HomeCountry    string `env:"SEARCH_HOME_COUNTRY" envDefault:"US"`
	OverfetchLimit int    `env:"SEARCH_OVERFETCH_LIMIT" envDefault:"100"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate database settings
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Database.ConnectAttempts < 1 {
		return fmt.Errorf("DATABASE_CONNECT_ATTEMPTS must be at least 1, got %d", cfg.Database.ConnectAttempts)
	}

	// Validate cache settings
	validDrivers := map[string]bool{"badger": true, "memory": true, "none": true}
	if !validDrivers[cfg.Cache.Driver] {
		return fmt.Errorf("CACHE_DRIVER must be one of: badger, memory, none; got %q", cfg.Cache.Driver)
	}
	if cfg.Cache.Driver == "badger" && cfg.Cache.Path == "" {
		return fmt.Errorf("CACHE_PATH is required when CACHE_DRIVER is badger")
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	// Validate search settings
	if len(cfg.Search.HomeCountry) != 2 {
		return fmt.Errorf("SEARCH_HOME_COUNTRY must be a two-letter country code, got %q", cfg.Search.HomeCountry)
	}
	if cfg.Search.OverfetchLimit < 1 {
		return fmt.Errorf("SEARCH_OVERFETCH_LIMIT must be at least 1, got %d", cfg.Search.OverfetchLimit)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
