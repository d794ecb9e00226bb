// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, provider and search policy defaults

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Provider contains content-search provider configuration
	Provider ProviderConfig

	// Search contains the default search policy toggles
	Search SearchConfig

	// LogLevel controls logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the per-client request ceiling per minute (0 disables)
	RateLimit int
}

// ProviderConfig holds external provider configuration
type ProviderConfig struct {
	// BaseURL is the provider API root
	BaseURL string

	// Token is the bearer credential forwarded on every provider request.
	// May be empty at startup; searches then fail with a configuration error.
	Token string

	// RequestsPerSecond paces outbound provider requests (0 disables pacing)
	RequestsPerSecond float64
}

// SearchConfig holds the default policy toggles for search executions
type SearchConfig struct {
	// UseQuotes wraps seeds in quotes for the upstream query
	UseQuotes bool

	// RequireExact selects strict boundary matching
	RequireExact bool

	// TrustQueryOnEmptyBody accepts provider-matched items without text
	TrustQueryOnEmptyBody bool

	// MinViews drops candidates below this view count
	MinViews int

	// MaxPages is the pagination ceiling per seed
	MaxPages int

	// DateToInclusive shifts date_to by one day on the wire
	DateToInclusive bool

	// FuzzyThreshold is the token-overlap acceptance ratio for fuzzy mode
	FuzzyThreshold float64

	// Workers bounds concurrent seed processing
	Workers int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("API_RATE_LIMIT", 60),
		},
		Provider: ProviderConfig{
			BaseURL:           getEnvOrDefault("PROVIDER_BASE_URL", "https://api.telemetr.me"),
			Token:             getEnvOrDefault("PROVIDER_TOKEN", ""),
			RequestsPerSecond: getEnvAsFloatOrDefault("PROVIDER_RPS", 4),
		},
		Search: SearchConfig{
			UseQuotes:             getEnvAsBoolOrDefault("SEARCH_USE_QUOTES", true),
			RequireExact:          getEnvAsBoolOrDefault("SEARCH_REQUIRE_EXACT", true),
			TrustQueryOnEmptyBody: getEnvAsBoolOrDefault("SEARCH_TRUST_QUERY", true),
			MinViews:              getEnvAsIntOrDefault("SEARCH_MIN_VIEWS", 0),
			MaxPages:              getEnvAsIntOrDefault("SEARCH_MAX_PAGES", 3),
			DateToInclusive:       getEnvAsBoolOrDefault("SEARCH_DATE_TO_INCLUSIVE", true),
			FuzzyThreshold:        getEnvAsFloatOrDefault("SEARCH_FUZZY_THRESHOLD", 0.6),
			Workers:               getEnvAsIntOrDefault("SEARCH_WORKERS", 4),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default.
// Accepts 1/0 alongside the strconv spellings.
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Provider.BaseURL == "" {
		return errors.New("provider base URL cannot be empty")
	}

	if c.Search.MaxPages < 1 {
		return errors.New("max pages must be at least 1")
	}

	if c.Search.FuzzyThreshold <= 0 || c.Search.FuzzyThreshold > 1 {
		return errors.New("fuzzy threshold must be in (0, 1]")
	}

	if c.Search.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	return nil
}
