package config

import (
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crafts")
	t.Setenv("ACCESS_TOKEN_SECRET", "super-secret")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LEGACY_OPEN_ROUTES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected default env development, got %q", cfg.Environment)
	}
	if cfg.LegacyOpenRoutes {
		t.Fatalf("legacy routes must default to off")
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "super-secret")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/crafts")
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ACCESS_TOKEN_SECRET is missing")
	}
}

func TestLoadParsesLegacyFlag(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/crafts")
	t.Setenv("ACCESS_TOKEN_SECRET", "super-secret")
	t.Setenv("LEGACY_OPEN_ROUTES", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.LegacyOpenRoutes {
		t.Fatalf("expected legacy routes on")
	}
}
