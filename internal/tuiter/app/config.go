package app

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration sourced from the environment.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// DatabaseFile is the sqlite database path. ":memory:" is accepted for
	// ephemeral runs.
	DatabaseFile string

	// PepperFile is the path to the password pepper. Created on first run if
	// missing.
	PepperFile string

	// SessionTTL bounds session lifetime.
	SessionTTL time.Duration

	// HousekeepingInterval controls how often expired sessions are purged.
	HousekeepingInterval time.Duration

	// ShutdownGrace bounds graceful shutdown of in-flight requests.
	ShutdownGrace time.Duration

	// Environment is the deployment environment name (development, production).
	Environment string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is "json" or "text".
	LogFormat string
}

// LoadConfig reads configuration from TUITER_* environment variables, falling
// back to development defaults.
func LoadConfig() Config {
	return Config{
		Port:                 getEnvInt("TUITER_PORT", 8080),
		DatabaseFile:         getEnvOrDefault("TUITER_DATABASE_FILE", "tuiter.db"),
		PepperFile:           getEnvOrDefault("TUITER_PEPPER_FILE", "pepper.key"),
		SessionTTL:           getEnvDuration("TUITER_SESSION_TTL", 24*time.Hour),
		HousekeepingInterval: getEnvDuration("TUITER_HOUSEKEEPING_INTERVAL", time.Hour),
		ShutdownGrace:        getEnvDuration("TUITER_SHUTDOWN_GRACE", 10*time.Second),
		Environment:          getEnvOrDefault("TUITER_ENV", "development"),
		LogLevel:             getEnvOrDefault("TUITER_LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("TUITER_LOG_FORMAT", "json"),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
