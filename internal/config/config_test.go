package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected defaults for missing config, got error: %v", err)
	}
	if cfg.Identity.User != "You (demo)" {
		t.Fatalf("unexpected default user: %q", cfg.Identity.User)
	}
	if len(cfg.Identity.KnownUsers) != 3 {
		t.Fatalf("unexpected default known users: %v", cfg.Identity.KnownUsers)
	}
	if cfg.Paths.Database == "" || cfg.Paths.Log == "" {
		t.Fatalf("expected default paths, got %+v", cfg.Paths)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
identity:
  user: "JazzKat"
  known_users: ["Ava"]
paths:
  database: "/tmp/test.db"
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Identity.User != "JazzKat" {
		t.Fatalf("expected user override, got %q", cfg.Identity.User)
	}
	if len(cfg.Identity.KnownUsers) != 1 || cfg.Identity.KnownUsers[0] != "Ava" {
		t.Fatalf("expected known_users override, got %v", cfg.Identity.KnownUsers)
	}
	if cfg.Paths.Database != "/tmp/test.db" {
		t.Fatalf("expected database override, got %q", cfg.Paths.Database)
	}
	// Unset keys keep their defaults.
	if cfg.Paths.Data != "./data" {
		t.Fatalf("expected default data dir, got %q", cfg.Paths.Data)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("identity: [not: a map"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadRejectsEmptyUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("identity:\n  user: \"\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty identity.user")
	}
}
