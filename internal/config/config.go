// Package config loads the process-wide settings once at startup.
//
// The returned *Config is built by Load, provided through fx and passed to
// the constructors that need it; nothing in the application mutates it after
// startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort            = 8000
	DefaultSearchRadiusKm  = 10.0
	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 30 * time.Minute
	DefaultAppName         = "EcoAndino API"
	DefaultAppVersion      = "1.0.0"
	productionOrigin       = "https://ecoandino.co"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: field %q: %s", e.Field, e.Message)
}

type Config struct {
	AppName    string
	AppVersion string

	DatabaseURL     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool

	Port     int
	Debug    bool
	LogLevel string

	// AllowedOrigins defaults to "*" in debug mode and to the production
	// front-end otherwise.
	AllowedOrigins []string

	// DefaultSearchRadiusKm is used by the nearby search when the caller
	// omits the radius.
	DefaultSearchRadiusKm float64

	// CategoryDeleteGuard makes category deletion fail while materials still
	// belong to the category.
	CategoryDeleteGuard bool
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		AppName:    getEnv("APP_NAME", DefaultAppName),
		AppVersion: getEnv("APP_VERSION", DefaultAppVersion),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, &ConfigError{Field: "DATABASE_URL", Message: "required but not set"}
	}

	var err error
	if cfg.Port, err = parseIntEnv("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns, err = parseIntEnv("DB_MAX_OPEN_CONNS", DefaultMaxOpenConns); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = parseIntEnv("DB_MAX_IDLE_CONNS", DefaultMaxIdleConns); err != nil {
		return nil, err
	}
	if cfg.ConnMaxLifetime, err = parseDurationEnv("DB_CONN_MAX_LIFETIME", DefaultConnMaxLifetime); err != nil {
		return nil, err
	}
	if cfg.Debug, err = parseBoolEnv("DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate, err = parseBoolEnv("AUTO_MIGRATE", true); err != nil {
		return nil, err
	}
	if cfg.CategoryDeleteGuard, err = parseBoolEnv("CATEGORY_DELETE_GUARD", false); err != nil {
		return nil, err
	}
	if cfg.DefaultSearchRadiusKm, err = parseFloatEnv("DEFAULT_SEARCH_RADIUS_KM", DefaultSearchRadiusKm); err != nil {
		return nil, err
	}

	cfg.AllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(cfg.AllowedOrigins) == 0 {
		if cfg.Debug {
			cfg.AllowedOrigins = []string{"*"}
		} else {
			cfg.AllowedOrigins = []string{productionOrigin}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate re-checks fields on an already-constructed Config.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, &ConfigError{Field: "DATABASE_URL", Message: "cannot be empty"})
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, &ConfigError{Field: "PORT", Message: "must be between 1 and 65535"})
	}
	if c.DefaultSearchRadiusKm < 0 {
		errs = append(errs, &ConfigError{Field: "DEFAULT_SEARCH_RADIUS_KM", Message: "must not be negative"})
	}
	if c.MaxOpenConns < 1 {
		errs = append(errs, &ConfigError{Field: "DB_MAX_OPEN_CONNS", Message: "must be at least 1"})
	}
	if c.MaxIdleConns < 0 {
		errs = append(errs, &ConfigError{Field: "DB_MAX_IDLE_CONNS", Message: "must not be negative"})
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ConfigError{Field: "LOG_LEVEL", Message: "must be one of debug, info, warn, error"})
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be a valid integer"}
	}
	return v, nil
}

func parseFloatEnv(key string, defaultVal float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be a valid number"}
	}
	return v, nil
}

func parseBoolEnv(key string, defaultVal bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &ConfigError{Field: key, Message: "must be a boolean"}
	}
	return v, nil
}

// parseDurationEnv accepts Go duration strings like "15m" or "1h".
func parseDurationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be a duration such as 30m"}
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
