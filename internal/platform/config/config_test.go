package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkarson1997/karatay-ders-program/internal/platform/config"
)

func TestLoadReadsFileAndKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dersprog.yaml")
	content := "catalog: custom.json\nterm_start: \"2026-09-21\"\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CatalogPath != "custom.json" {
		t.Fatalf("expected catalog from file, got %q", cfg.CatalogPath)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.TermWeeks != 14 || cfg.Timezone != "Europe/Istanbul" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.DBPath != filepath.Join(".dersprog", "dersprog.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dersprog.yaml")
	if err := os.WriteFile(path, []byte("catalog: from-file.json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DERS_CATALOG", "from-env.yaml")
	t.Setenv("DERS_LOG_FORMAT", "json")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CatalogPath != "from-env.yaml" || cfg.Log.Format != "json" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dersprog.yaml")
	if err := os.WriteFile(path, []byte("term_start: 21.09.2026\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected invalid term_start to fail")
	}
	if _, err := config.Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("explicit missing config file should fail")
	}
}
