// Package config provides environment-driven configuration for the employee service.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration values.
type Config struct {
	VaultPath         string
	Port              string
	ListenHost        string
	CORSOrigins       []string
	LogLevel          string
	HousekeepInterval time.Duration
	AuditInterval     time.Duration
	ActivityQueueSize int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		VaultPath:  envOrDefault("VAULT_PATH", "./AI_Employee_Vault"),
		Port:       envOrDefault("PORT", "8000"),
		ListenHost: envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
	}

	var err error
	cfg.HousekeepInterval, err = parseInterval("HOUSEKEEP_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}

	cfg.AuditInterval, err = parseInterval("AUDIT_INTERVAL", "168h")
	if err != nil {
		return nil, err
	}

	cfg.ActivityQueueSize = 1000

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func parseInterval(key, fallback string) (time.Duration, error) {
	raw := envOrDefault(key, fallback)

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 5m or 168h: %w", key, err)
	}

	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
