package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
app = "ci-bot"
timeout = 3000

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.App != "ci-bot" {
		t.Errorf("expected app 'ci-bot', got '%s'", cfg.App)
	}
	if cfg.Timeout != 3000 {
		t.Errorf("expected timeout 3000, got %d", cfg.Timeout)
	}
	if cfg.Icon != "dialog-information" {
		t.Errorf("expected default icon to survive, got '%s'", cfg.Icon)
	}
	if cfg.Binary != "notify-send" {
		t.Errorf("expected default binary to survive, got '%s'", cfg.Binary)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log settings: %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() returned an unexpected error: %v", err)
	}
}

func TestLoad_TildeExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	writeConfig(t, tmpDir, `icon = "face-smile"`)

	cfg, err := Load("~/config.toml")
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if cfg.Icon != "face-smile" {
		t.Errorf("expected icon 'face-smile', got '%s'", cfg.Icon)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `urgency = "critical"`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() returned an unexpected error: %v", err)
	}
	if cfg.Timeout != 5000 || cfg.Icon != "dialog-information" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty binary", func(c *Config) { c.Binary = " " }, true},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"json format", func(c *Config) { c.Log.Format = "JSON" }, false},
		{"negative timeout passes", func(c *Config) { c.Timeout = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
