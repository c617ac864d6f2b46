package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL string // Required: base URL of the event platform API

	SessionDriver string        // Optional: session store driver (memory, bolt, sqlite) (default: bolt)
	SessionFile   string        // Optional: path to the session file (default: ./panel-session.db)
	Timeout       time.Duration // Optional: per-request HTTP timeout (default: 50s)
	RateLimit     float64       // Optional: outbound requests per second (default: 20)
	RateBurst     int           // Optional: outbound request burst (default: 40)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	cfg := Config{
		APIBaseURL:    os.Getenv("PANEL_API_BASE_URL"),
		SessionDriver: getEnvOrDefault("PANEL_SESSION_DRIVER", "bolt"),
		SessionFile:   getEnvOrDefault("PANEL_SESSION_FILE", "panel-session.db"),
		Timeout:       getEnvDurationOrDefault("PANEL_TIMEOUT", 0),
		RateBurst:     getEnvIntOrDefault("PANEL_RATE_BURST", 40),
		Env:           getEnvOrDefault("ENV", "dev"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:     getEnvOrDefault("LOG_FORMAT", "text"),
	}

	cfg.RateLimit = 20
	if limitStr := os.Getenv("PANEL_RATE_LIMIT"); limitStr != "" {
		if limit, err := strconv.ParseFloat(limitStr, 64); err == nil && limit > 0 {
			cfg.RateLimit = limit
		}
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080/api/"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
