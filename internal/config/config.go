package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that decodes from TOML strings like "6h".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Config keeps runtime settings for the tracker. Values come from an
// optional TOML file, with environment variables overriding file values.
type Config struct {
	Addr            string   `toml:"addr"`
	DatabasePath    string   `toml:"database_path"`
	JWTSecret       string   `toml:"jwt_secret"`
	BcryptCost      int      `toml:"bcrypt_cost"`
	CookieSecure    bool     `toml:"cookie_secure"`
	ReportInterval  Duration `toml:"report_interval"`
	StaleClaimAfter Duration `toml:"stale_claim_after"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		DatabasePath:    "tracker.db",
		BcryptCost:      12,
		CookieSecure:    true,
		ReportInterval:  Duration(6 * time.Hour),
		StaleClaimAfter: Duration(72 * time.Hour),
	}
}

// Load reads the TOML file at path (if path is non-empty and the file
// exists) on top of the defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("TRACKER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST %q: %w", v, err)
		}
		c.BcryptCost = cost
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		c.CookieSecure = v != "false"
	}
	if v := os.Getenv("REPORT_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REPORT_INTERVAL %q: %w", v, err)
		}
		c.ReportInterval = Duration(interval)
	}
	if v := os.Getenv("STALE_CLAIM_AFTER"); v != "" {
		after, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid STALE_CLAIM_AFTER %q: %w", v, err)
		}
		c.StaleClaimAfter = Duration(after)
	}
	return nil
}

// Validate checks settings the server cannot run without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret (or JWT_SECRET) is required")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt_cost must be between 4 and 14, got %d", c.BcryptCost)
	}
	return nil
}
