// Package config provides application configuration through environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/zoobzio/sensitive"
)

// ProductionEnv is the APP_ENV value that marks a production deployment.
const ProductionEnv = "production"

// Config holds all application configuration.
type Config struct {
	// EncryptionKey is the operator secret for sensitive fields. Either 64
	// hex characters (a raw key) or a passphrase stretched with PBKDF2.
	EncryptionKey string

	// AppEnv is the deployment environment (e.g., "development", "production").
	AppEnv string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MongoURI is the connection string for the document database.
	MongoURI string
	// MongoDatabase is the database holding the loan collections.
	MongoDatabase string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		EncryptionKey: env.GetString("ENCRYPTION_KEY", ""),
		AppEnv:        env.GetString("APP_ENV", "development"),
		LogLevel:      env.GetString("LOG_LEVEL", "info"),
		MongoURI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: env.GetString("MONGO_DATABASE", "loans"),
	}
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == ProductionEnv
}

// Codec returns the configuration injected into sensitive.NewFieldCodec.
func (c *Config) Codec() sensitive.Config {
	return sensitive.Config{
		Secret:     c.EncryptionKey,
		Production: c.IsProduction(),
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// godotenv does not override variables already set
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
