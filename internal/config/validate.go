package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

func (c *Config) validate() error {
	if err := c.validateVault(); err != nil {
		return err
	}

	if err := c.validateNetwork(); err != nil {
		return err
	}

	if err := c.validateCORS(); err != nil {
		return err
	}

	return c.validateSchedule()
}

func (c *Config) validateVault() error {
	if strings.TrimSpace(c.VaultPath) == "" {
		return fmt.Errorf("VAULT_PATH must not be empty")
	}

	// The path does not have to exist yet (buckets are created at startup)
	// but it must be expressible as an absolute path.
	if _, err := filepath.Abs(c.VaultPath); err != nil {
		return fmt.Errorf("VAULT_PATH is not a usable path: %w", err)
	}

	return nil
}

func (c *Config) validateNetwork() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	// Validate LISTEN_HOST is a known-safe address. Allow loopback addresses
	// for local deployments and 0.0.0.0/:: for containerized deployments
	// where the network boundary is enforced externally.
	validHosts := map[string]bool{
		"127.0.0.1": true,
		"::1":       true,
		"localhost": true,
		"0.0.0.0":   true,
		"::":        true,
	}
	if !validHosts[c.ListenHost] {
		return fmt.Errorf("LISTEN_HOST must be a loopback address or 0.0.0.0/:: for containers (got %q)", c.ListenHost)
	}

	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return fmt.Errorf("CORS_ORIGINS must not contain wildcard '*'")
		}
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("CORS_ORIGINS must not contain glob characters (*?[]), got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("CORS_ORIGINS contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}

func (c *Config) validateSchedule() error {
	if c.HousekeepInterval < time.Minute {
		return fmt.Errorf("HOUSEKEEP_INTERVAL must be at least 1m (got %s)", c.HousekeepInterval)
	}

	if c.AuditInterval < time.Hour {
		return fmt.Errorf("AUDIT_INTERVAL must be at least 1h (got %s)", c.AuditInterval)
	}

	return nil
}
