package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.CookieName != "admin-token" {
		t.Errorf("CookieName = %q, want admin-token", cfg.Auth.CookieName)
	}
	if cfg.Auth.JWTSecret == "" {
		t.Error("JWTSecret should fall back to a development secret")
	}
	if got := cfg.Auth.SessionTTL(); got != 24*time.Hour {
		t.Errorf("SessionTTL() = %v, want 24h", got)
	}
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want missing secret error")
	}
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("Load() error = nil, want REDIS_DB error")
	}
}
