// Package config loads runtime settings for the exercise tracker from the
// environment, with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StrategyQuery  = "query"
	StrategyMemory = "memory"
)

type Config struct {
	MongoURI          string
	MongoDatabase     string
	Port              string
	LogLevel          string
	AppEnv            string
	LogFilterStrategy string
	RequestTimeout    time.Duration
	StaticDir         string
	AllowedOrigins    []string
}

// Load reads the environment into Config. A missing MONGO_URI is an error the
// caller is expected to treat as fatal.
func Load() (*Config, error) {
	// .env is optional; plain environment variables are enough.
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "exercise-tracker"),
		Port:              getEnv("PORT", "3000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AppEnv:            getEnv("APP_ENV", "development"),
		LogFilterStrategy: strings.ToLower(getEnv("LOG_FILTER_STRATEGY", StrategyQuery)),
		RequestTimeout:    getDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
		StaticDir:         getEnv("STATIC_DIR", "public"),
		AllowedOrigins:    splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("environment variable MONGO_URI must be set")
	}
	if cfg.LogFilterStrategy != StrategyQuery && cfg.LogFilterStrategy != StrategyMemory {
		return nil, fmt.Errorf("LOG_FILTER_STRATEGY must be %q or %q, got %q", StrategyQuery, StrategyMemory, cfg.LogFilterStrategy)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
