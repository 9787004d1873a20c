// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Presigned URLs are limited to seven days by S3.
const maxSignedURLTTL = 7 * 24 * time.Hour

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// Object storage (S3-compatible: MinIO locally, any S3 provider in production)
	StorageEndpoint         string
	StorageRegion           string
	StorageBucket           string
	StorageCredentialsPath  string
	StorageCredentialsAlias string
	StorageAccessKey        string
	StorageSecretKey        string

	MaxFileSize  int64
	SignedURLTTL time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "5001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STORAGE_ENDPOINT", "localhost:9000")
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_BUCKET", "media")
	v.SetDefault("STORAGE_CREDENTIALS_PATH", "credential.json")
	v.SetDefault("STORAGE_CREDENTIALS_ALIAS", "s3")
	v.SetDefault("MAX_FILE_SIZE", "100MiB")
	v.SetDefault("SIGNED_URL_TTL", "1h")

	maxSize, err := humanize.ParseBytes(v.GetString("MAX_FILE_SIZE"))
	if err != nil {
		return nil, fmt.Errorf("parse MAX_FILE_SIZE: %w", err)
	}

	ttl, err := time.ParseDuration(v.GetString("SIGNED_URL_TTL"))
	if err != nil {
		return nil, fmt.Errorf("parse SIGNED_URL_TTL: %w", err)
	}

	cfg := &Config{
		Port:   v.GetString("PORT"),
		AppEnv: strings.ToLower(v.GetString("APP_ENV")),

		StorageEndpoint:         v.GetString("STORAGE_ENDPOINT"),
		StorageRegion:           v.GetString("STORAGE_REGION"),
		StorageBucket:           v.GetString("STORAGE_BUCKET"),
		StorageCredentialsPath:  v.GetString("STORAGE_CREDENTIALS_PATH"),
		StorageCredentialsAlias: v.GetString("STORAGE_CREDENTIALS_ALIAS"),
		StorageAccessKey:        v.GetString("STORAGE_ACCESS_KEY"),
		StorageSecretKey:        v.GetString("STORAGE_SECRET_KEY"),

		MaxFileSize:  int64(maxSize),
		SignedURLTTL: ttl,
	}

	cfg.LogLevel = strings.ToUpper(v.GetString("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "INFO"
		if cfg.IsDevelopment() {
			cfg.LogLevel = "DEBUG"
		}
	}

	return cfg, nil
}

// Validate reports the first setting that would keep the service from working.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StorageBucket) == "" {
		return errors.New("STORAGE_BUCKET must be set")
	}
	if c.MaxFileSize <= 0 {
		return errors.New("MAX_FILE_SIZE must be positive")
	}
	if c.SignedURLTTL < time.Second || c.SignedURLTTL > maxSignedURLTTL {
		return fmt.Errorf("SIGNED_URL_TTL must be between 1s and %s", maxSignedURLTTL)
	}
	return nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// IsDevelopment returns true when the app is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
