package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "tracker.db" {
		t.Fatalf("expected tracker.db, got %q", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected cookie_secure to default to true")
	}
	if time.Duration(cfg.ReportInterval) != 6*time.Hour {
		t.Fatalf("expected 6h report interval, got %v", time.Duration(cfg.ReportInterval))
	}
	if time.Duration(cfg.StaleClaimAfter) != 72*time.Hour {
		t.Fatalf("expected 72h stale cutoff, got %v", time.Duration(cfg.StaleClaimAfter))
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
addr = ":9090"
database_path = "/var/lib/tracker.db"
jwt_secret = "file-secret-long-enough-for-validation!"
bcrypt_cost = 10
cookie_secure = false
report_interval = "30m"
stale_claim_after = "48h"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if cfg.DatabasePath != "/var/lib/tracker.db" {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.CookieSecure {
		t.Fatal("expected cookie_secure false")
	}
	if time.Duration(cfg.ReportInterval) != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", time.Duration(cfg.ReportInterval))
	}
	if time.Duration(cfg.StaleClaimAfter) != 48*time.Hour {
		t.Fatalf("expected 48h, got %v", time.Duration(cfg.StaleClaimAfter))
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`addr = ":9090"`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TRACKER_ADDR", ":7070")
	t.Setenv("JWT_SECRET", "env-secret-long-enough-for-validation!!")
	t.Setenv("BCRYPT_COST", "8")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("REPORT_INTERVAL", "15m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":7070" {
		t.Fatalf("expected env addr :7070, got %q", cfg.Addr)
	}
	if cfg.JWTSecret != "env-secret-long-enough-for-validation!!" {
		t.Fatalf("unexpected secret %q", cfg.JWTSecret)
	}
	if cfg.BcryptCost != 8 {
		t.Fatalf("expected cost 8, got %d", cfg.BcryptCost)
	}
	if cfg.CookieSecure {
		t.Fatal("expected cookie_secure false from env")
	}
	if time.Duration(cfg.ReportInterval) != 15*time.Minute {
		t.Fatalf("expected 15m, got %v", time.Duration(cfg.ReportInterval))
	}
}

func TestLoad_InvalidEnvValues(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for bad BCRYPT_COST")
	}
	t.Setenv("BCRYPT_COST", "")

	t.Setenv("REPORT_INTERVAL", "soon")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for bad REPORT_INTERVAL")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) { c.JWTSecret = "0123456789abcdef0123456789abcdef" }, false},
		{"missing secret", func(c *Config) {}, true},
		{"short secret", func(c *Config) { c.JWTSecret = "too-short" }, true},
		{"cost too low", func(c *Config) {
			c.JWTSecret = "0123456789abcdef0123456789abcdef"
			c.BcryptCost = 3
		}, true},
		{"cost too high", func(c *Config) {
			c.JWTSecret = "0123456789abcdef0123456789abcdef"
			c.BcryptCost = 20
		}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("90s")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if time.Duration(d) != 90*time.Second {
		t.Fatalf("expected 90s, got %v", time.Duration(d))
	}
	if err := d.UnmarshalText([]byte("ninety")); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
