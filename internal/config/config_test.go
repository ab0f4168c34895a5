package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != ModeAuto {
		t.Fatalf("default mode = %q", cfg.Mode)
	}
	if cfg.Output != OutputTable {
		t.Fatalf("default output = %q", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("SWATCH_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeAuto || cfg.Output != OutputTable || cfg.Theme != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Store.Path == "" {
		t.Fatal("store path default missing")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SWATCH_CONFIG_DIR", dir)

	yaml := "mode: dark\ntheme: midnight\noutput: json\nstore:\n  path: /tmp/custom.db\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeDark {
		t.Fatalf("mode = %q", cfg.Mode)
	}
	if cfg.Theme != "midnight" {
		t.Fatalf("theme = %q", cfg.Theme)
	}
	if cfg.Output != OutputJSON {
		t.Fatalf("output = %q", cfg.Output)
	}
	if cfg.Store.Path != "/tmp/custom.db" {
		t.Fatalf("store path = %q", cfg.Store.Path)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SWATCH_CONFIG_DIR", t.TempDir())
	t.Setenv("SWATCH_MODE", "light")
	t.Setenv("SWATCH_THEME", "paper")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeLight {
		t.Fatalf("mode = %q, want env override", cfg.Mode)
	}
	if cfg.Theme != "paper" {
		t.Fatalf("theme = %q, want env override", cfg.Theme)
	}
}

func TestLoadInvalidMode(t *testing.T) {
	t.Setenv("SWATCH_CONFIG_DIR", t.TempDir())
	t.Setenv("SWATCH_MODE", "sideways")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid mode")
	}
}

func TestDirEnvOverride(t *testing.T) {
	t.Setenv("SWATCH_CONFIG_DIR", "/somewhere/else")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if dir != "/somewhere/else" {
		t.Fatalf("dir = %q", dir)
	}
}
