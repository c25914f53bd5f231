package config

import (
	"fmt"
	"os"
	"strconv"
)

// Directory driver selection.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string

	// JWT configuration
	JWTSecret          string
	JWTExpirationHours int64

	// Which user directory backs the auth service
	DirectoryDriver string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: getEnvInt64("JWT_EXPIRATION_HOURS", 24),
		DirectoryDriver:    getEnv("DIRECTORY_DRIVER", DriverMemory),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}
	if cfg.DirectoryDriver != DriverMemory && cfg.DirectoryDriver != DriverPostgres {
		return nil, fmt.Errorf("unknown DIRECTORY_DRIVER %q (want %q or %q)",
			cfg.DirectoryDriver, DriverMemory, DriverPostgres)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
