// Package config loads swatch settings from disk and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Theme mode values. Auto defers to terminal background detection in the
// command layer; the resolver itself never detects anything.
const (
	ModeAuto  = "auto"
	ModeLight = "light"
	ModeDark  = "dark"
)

// Output format values.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Config holds swatch settings.
type Config struct {
	Mode    string      `mapstructure:"mode"`
	Theme   string      `mapstructure:"theme"`
	NoColor bool        `mapstructure:"no_color"`
	Output  string      `mapstructure:"output"`
	Store   StoreConfig `mapstructure:"store"`
}

// StoreConfig holds settings for the saved-theme database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Dir returns the configuration directory, honoring SWATCH_CONFIG_DIR.
func Dir() (string, error) {
	if dir := os.Getenv("SWATCH_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "swatch"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:   ModeAuto,
		Output: OutputTable,
	}
}

// Load reads config.yaml from the configuration directory, applies SWATCH_*
// environment overrides and validates the result. A missing config file is
// fine; defaults apply.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("SWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", ModeAuto)
	v.SetDefault("theme", "")
	v.SetDefault("no_color", false)
	v.SetDefault("output", OutputTable)
	v.SetDefault("store.path", filepath.Join(dir, "themes.db"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeAuto, ModeLight, ModeDark:
	default:
		return fmt.Errorf("invalid mode %q (want auto, light or dark)", c.Mode)
	}
	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q (want table, json or yaml)", c.Output)
	}
	return nil
}
