package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Fetch  FetchConfig
	Log    LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"

	// ShutdownTimeout is how long in-flight requests get to drain.
	ShutdownTimeout time.Duration // default: 5s
}

// FetchConfig controls the outbound page fetch.
type FetchConfig struct {
	// UserAgent is sent on every fetch.
	UserAgent string // default: "DelRayScraperBot/1.0"

	// Timeout bounds one fetch, including reading the body.
	Timeout time.Duration // default: 15s

	// MaxBodyBytes is the hard cap on returned page text.
	MaxBodyBytes int // default: 204800
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            envOr("SCRAPEBOT_HOST", "0.0.0.0"),
			Port:            envIntOr("SCRAPEBOT_PORT", 8080),
			Mode:            envOr("SCRAPEBOT_MODE", "release"),
			ShutdownTimeout: envDurationOr("SCRAPEBOT_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Fetch: FetchConfig{
			UserAgent:    envOr("SCRAPEBOT_USER_AGENT", "DelRayScraperBot/1.0"),
			Timeout:      envDurationOr("SCRAPEBOT_FETCH_TIMEOUT", 15*time.Second),
			MaxBodyBytes: envIntOr("SCRAPEBOT_MAX_BODY_BYTES", 200*1024),
		},
		Log: LogConfig{
			Level:  envOr("SCRAPEBOT_LOG_LEVEL", "info"),
			Format: envOr("SCRAPEBOT_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
