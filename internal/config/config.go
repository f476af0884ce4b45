package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	CORSOrigins []string
	MockMode    bool
	JWTSecret   string
	JWTExpiry   time.Duration
	Logging     LoggingConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. MOCK_MODE defaults to true:
// plaintext passwords, deterministic tokens, seeded demo data. Turning it off
// requires a JWT secret.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8000"),
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGIN", "*")),
		MockMode:    getEnvBool("MOCK_MODE", true),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTExpiry:   time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 720)) * time.Hour,
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
	if !cfg.MockMode && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required when MOCK_MODE=false")
	}
	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, trimming whitespace and
// trailing slashes.
func splitOrigins(raw string) []string {
	var origins []string
	for _, p := range strings.Split(raw, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
