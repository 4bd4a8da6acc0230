package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort         int           `json:"server_port"`
	Environment        string        `json:"environment"`
	LogLevel           string        `json:"log_level"`
	JWTSecretKey       string        `json:"jwt_secret_key"`
	JWTExpirationHours int           `json:"jwt_expiration_hours"`
	RateLimitEnabled   bool          `json:"rate_limit_enabled"`
	DefaultRateLimit   int           `json:"default_rate_limit"`
	GlobalRateLimit    int           `json:"global_rate_limit"`
	SnapshotInterval   time.Duration `json:"snapshot_interval"`
}

func Load() (*Config, error) {
	return &Config{
		ServerPort:         getEnvIntWithDefault("SERVER_PORT", 10000),
		Environment:        getEnvWithDefault("APP_ENV", "development"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", ""),
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: getEnvIntWithDefault("JWT_EXPIRATION_HOURS", 24),
		RateLimitEnabled:   getEnvBoolWithDefault("RATE_LIMIT_ENABLED", true),
		DefaultRateLimit:   getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 1000),  // requests per minute per subject
		GlobalRateLimit:    getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000), // requests per minute per IP
		SnapshotInterval:   getEnvDurationWithDefault("SNAPSHOT_INTERVAL", time.Hour),
	}, nil
}

// AuthEnabled reports whether bearer tokens are required on the API routes.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecretKey != ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDurationWithDefault returns environment variable as duration or default if not set
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
