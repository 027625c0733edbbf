package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/taishingi/notifme"
)

// Config represents the notifme configuration file.
type Config struct {
	Binary  string `toml:"binary"`
	Icon    string `toml:"icon"`
	App     string `toml:"app"`
	Timeout int    `toml:"timeout"`
	Log     Log    `toml:"log"`
}

// Log holds logger settings.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Binary:  notifme.DefaultBinary,
		Icon:    notifme.DefaultIcon,
		Timeout: notifme.DefaultTimeout,
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/notifme/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "notifme", "config.toml")
}

// Load reads a TOML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	path = expandHome(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath, or returns the defaults
// if it does not exist.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultPath())
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Binary) == "" {
		return fmt.Errorf("binary must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.Log.Format)
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
