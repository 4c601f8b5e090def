package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort       int
	DatabasePath     string
	JWTSecret        string
	TokenTTL         time.Duration
	SummaryCutoff    int
	SummaryTemplate  bool
	BroadcastEnabled bool
	CORSOrigin       string
}

// Load loads configuration from environment variables or sets defaults.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cutoff, err := strconv.Atoi(getEnv("SUMMARY_CUTOFF", "50"))
	if err != nil || cutoff <= 0 {
		return nil, fmt.Errorf("invalid SUMMARY_CUTOFF: %q", getEnv("SUMMARY_CUTOFF", "50"))
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "2h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:       port,
		DatabasePath:     getEnv("DATABASE_PATH", "./portal.db"),
		JWTSecret:        secret,
		TokenTTL:         ttl,
		SummaryCutoff:    cutoff,
		SummaryTemplate:  getEnvBool("SUMMARY_TEMPLATE", false),
		BroadcastEnabled: getEnvBool("BROADCAST_ENABLED", true),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
