package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.DB.Path != filepath.Join("data", "quell.db") {
		t.Fatalf("expected default db path, got %q", cfg.DB.Path)
	}
	if cfg.ListenAddr() != "0.0.0.0:9090" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr())
	}
}

func TestLoad_ExplicitMissingConfigFileFails(t *testing.T) {
	setRequiredEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for explicitly named missing config file")
	}
}

func TestValidate_SecretKey(t *testing.T) {
	t.Parallel()

	base := Config{Server: ServerConfig{Port: 8080}}

	cfg := base
	cfg.Auth.SecretKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty secret")
	}

	cfg = base
	cfg.Auth.SecretKey = "change_me_in_production"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "placeholder") {
		t.Fatalf("expected placeholder error, got %v", err)
	}

	cfg = base
	cfg.Auth.SecretKey = "too-short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short secret")
	}

	cfg = base
	cfg.Auth.SecretKey = "0123456789abcdef0123456789abcdef"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Port(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Server: ServerConfig{Port: 0},
		Auth:   AuthConfig{SecretKey: "0123456789abcdef0123456789abcdef"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}
