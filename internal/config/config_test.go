package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://localhost/civicvoice",
			MaxConns: 25,
			MinConns: 5,
		},
		Auth: AuthConfig{
			JWTSecret:        strings.Repeat("s", 32),
			JWTIssuer:        "civicvoice",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  30 * 24 * time.Hour,
			PasswordHashCost: 10,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "short" },
			wantMsg: "jwt_secret",
		},
		{
			name:    "zero access ttl",
			mutate:  func(c *Config) { c.Auth.AccessTokenTTL = 0 },
			wantMsg: "access_token_ttl",
		},
		{
			name:    "refresh ttl not exceeding access ttl",
			mutate:  func(c *Config) { c.Auth.RefreshTokenTTL = c.Auth.AccessTokenTTL },
			wantMsg: "refresh_token_ttl",
		},
		{
			name:    "hash cost out of range",
			mutate:  func(c *Config) { c.Auth.PasswordHashCost = 99 },
			wantMsg: "password_hash_cost",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantMsg: "server.port",
		},
		{
			name:    "max conns below min conns",
			mutate:  func(c *Config) { c.Database.MaxConns = 1 },
			wantMsg: "max_conns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://localhost/civicvoice")
	t.Setenv("AUTH_JWT_SECRET", strings.Repeat("s", 32))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Load() default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("Load() default access TTL = %v, want 15m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Load() log defaults = (%q, %q)", cfg.Log.Level, cfg.Log.Format)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/does/not/exist.yaml")

	if _, err := Load(); err == nil {
		t.Error("Load() = nil error for a missing explicit config file")
	}
}
