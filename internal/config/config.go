// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Catalog sources accepted by CATALOG_SOURCE.
const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// CatalogSource selects where locations and POIs are read from:
	// the embedded YAML catalog ("static", default) or Postgres.
	CatalogSource string

	// DatabaseURL is the Postgres connection string.
	// Required when CatalogSource is "postgres".
	DatabaseURL string

	// POIRadiusKm bounds the hotels and restaurants attached to a route
	// result, measured from the destination. Defaults to 5.
	POIRadiusKm float64

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// SlogLevel returns LogLevel as a slog.Level. Load has already validated it.
func (c Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Load reads configuration from environment variables and returns a Config.
//
// envFiles are loaded first with godotenv (default ".env"); variables already
// present in the environment win, and missing files are ignored.
// Returns an error naming every variable that is missing or invalid.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", CatalogStatic)),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	var problems []string

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		problems = append(problems, "PORT must be a number")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		problems = append(problems, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	switch cfg.CatalogSource {
	case CatalogStatic:
	case CatalogPostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when CATALOG_SOURCE=postgres")
		}
	default:
		problems = append(problems, "CATALOG_SOURCE must be static or postgres")
	}

	radius, err := strconv.ParseFloat(getEnv("POI_RADIUS_KM", "5"), 64)
	if err != nil || radius <= 0 {
		problems = append(problems, "POI_RADIUS_KM must be a number greater than zero")
	}
	cfg.POIRadiusKm = radius

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		problems = append(problems, "MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
