package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr            string
	DatabaseURL     string
	SQLitePath      string
	Environment     string
	MetricsEnabled  bool
	SnapshotTimeout time.Duration
	MaxPoolConns    int
}

func Load() Config {
	return Config{
		Addr:            getEnv("APP_ADDR", ":8080"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SQLitePath:      getEnv("SQLITE_PATH", ""),
		Environment:     getEnv("APP_ENV", "development"),
		MetricsEnabled:  getEnvBool("METRICS_ENABLED", true),
		SnapshotTimeout: getEnvDuration("SNAPSHOT_TIMEOUT", 30*time.Second),
		MaxPoolConns:    getEnvInt("MAX_POOL_CONNS", 10),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
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

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks that exactly one snapshot source is configured.
func (c Config) Validate() error {
	hasPostgres := strings.TrimSpace(c.DatabaseURL) != ""
	hasSQLite := strings.TrimSpace(c.SQLitePath) != ""
	if !hasPostgres && !hasSQLite {
		return fmt.Errorf("one of DATABASE_URL or SQLITE_PATH is required")
	}
	if hasPostgres && hasSQLite {
		return fmt.Errorf("only one of DATABASE_URL or SQLITE_PATH may be set")
	}
	return nil
}
