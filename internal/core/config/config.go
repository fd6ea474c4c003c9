// Package config handles configuration loading and validation for retodo.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/retodo/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Keys KeysConfig `yaml:"keys"`
	TUI  TUIConfig  `yaml:"tui"`
}

// KeysConfig holds the history key bindings. Values use bubbletea key
// notation, e.g. "ctrl+z" or "alt+z".
type KeysConfig struct {
	Undo []string `yaml:"undo"`
	Redo []string `yaml:"redo"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Keys: KeysConfig{
			Undo: []string{"ctrl+z"},
			Redo: []string{"alt+z"},
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if len(c.Keys.Undo) == 0 {
		c.Keys.Undo = defaults.Keys.Undo
	}
	if len(c.Keys.Redo) == 0 {
		c.Keys.Redo = defaults.Keys.Redo
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
