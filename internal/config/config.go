package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/Mamlesh45/Myntra-Clone/pkg/config"
)

// Config holds all configuration for the storefront server.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Session storage: "memory" or "redis".
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"memory"`

	// Redis (only used when SessionBackend is "redis")
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Session TTL in hours. Sessions are browsing state, not accounts, so
	// the default is a single day.
	SessionTTL int `env:"SESSION_TTL_HOURS" envDefault:"24"`

	// Number of products in the seeded catalog.
	CatalogSize int `env:"CATALOG_SIZE" envDefault:"12"`

	// Seconds a notification stays visible before auto-dismissing.
	NotifyDismissSeconds int `env:"NOTIFY_DISMISS_SECONDS" envDefault:"3"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SessionTTLDuration returns the session TTL as a duration.
func (c *Config) SessionTTLDuration() time.Duration {
	return time.Duration(c.SessionTTL) * time.Hour
}

// NotifyDismissDuration returns the notification auto-dismiss delay.
func (c *Config) NotifyDismissDuration() time.Duration {
	return time.Duration(c.NotifyDismissSeconds) * time.Second
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.SessionBackend != "memory" && c.SessionBackend != "redis" {
		return fmt.Errorf("invalid session backend: %q", c.SessionBackend)
	}
	if c.CatalogSize < 1 {
		return fmt.Errorf("invalid catalog size: %d", c.CatalogSize)
	}
	return nil
}
