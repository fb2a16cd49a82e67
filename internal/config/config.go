package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port            string
	BaseURL         string
	JWTSecret       string
	DefaultLanguage string
	AttachmentsDir  string
	Database        DatabaseConfig
	LAS             LASConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Alter    bool
}

// LASConfig holds the legacy LAS ERP connection settings. Article sync
// stays disabled while URL is empty.
type LASConfig struct {
	URL          string
	Database     string
	Username     string
	Password     string
	SyncInterval time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	syncInterval, err := time.ParseDuration(getEnv("LAS_SYNC_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid LAS_SYNC_INTERVAL: %w", err)
	}

	return &Config{
		Port:            getEnv("PORT", "3001"),
		BaseURL:         os.Getenv("BASE_URL"),
		JWTSecret:       jwtSecret,
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "it"),
		AttachmentsDir:  getEnv("ATTACHMENTS_DIR", "./attachments"),
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "laserpack"),
			Alter:    getEnv("DB_ALTER", "false") == "true",
		},
		LAS: LASConfig{
			URL:          os.Getenv("LAS_URL"),
			Database:     getEnv("LAS_DATABASE", "las"),
			Username:     os.Getenv("LAS_USERNAME"),
			Password:     os.Getenv("LAS_PASSWORD"),
			SyncInterval: syncInterval,
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
