// Package config reads the importer configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all importer configuration.
type Config struct {
	Backend BackendConfig
	Import  ImportConfig
}

// BackendConfig locates the finance REST API.
type BackendConfig struct {
	BaseURL        string
	RequestsPerSec float64
	RateLimitBurst int
	TimeoutSeconds int
}

// ImportConfig stamps created records with the owning user and account.
type ImportConfig struct {
	UserID    int
	AccountID int
	Currency  string
}

// Load reads configuration from environment variables, picking up a .env
// file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			RequestsPerSec: getEnvAsFloat("BACKEND_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst: getEnvAsInt("BACKEND_RATE_LIMIT_BURST", 10),
			TimeoutSeconds: getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 30),
		},
		Import: ImportConfig{
			UserID:    getEnvAsInt("IMPORT_USER_ID", 1),
			AccountID: getEnvAsInt("IMPORT_ACCOUNT_ID", 1),
			Currency:  getEnv("IMPORT_CURRENCY", "EUR"),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, errors.New("BACKEND_BASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
