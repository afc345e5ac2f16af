package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// Config holds everything selected by the APP_ENV profile.
// Individual values can still be overridden through the environment.
type Config struct {
	Env           string
	DBPath        string
	RedisAddr     string
	CacheType     string // "redis" or "memory"
	SessionSecret string
	Port          string
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Load reads an optional .env file and resolves the active profile.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	env := getenv("APP_ENV", EnvDevelopment)

	cfg := Config{
		Env:           env,
		DBPath:        "./goaltrack.db",
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		CacheType:     "redis",
		SessionSecret: getenv("SESSION_SECRET", "dev-secret-change-in-production"),
		Port:          getenv("PORT", "8080"),
	}

	switch env {
	case EnvProduction:
		if cfg.SessionSecret == "dev-secret-change-in-production" {
			logger.Error("SESSION_SECRET must be set in production")
			os.Exit(1)
		}
	case EnvTesting:
		// Tests use throwaway state; no redis dependency.
		cfg.DBPath = ":memory:"
		cfg.CacheType = "memory"
	}

	if p := os.Getenv("DB_PATH"); p != "" {
		cfg.DBPath = p
	}

	logger.Info("Configuration loaded", zap.String("env", cfg.Env), zap.String("db", cfg.DBPath))
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
