// Package config handles configuration loading and validation for waypoint.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/waypoint/internal/core/styles"
	"github.com/colonyops/waypoint/internal/core/trip"
)

// Config holds the application configuration.
type Config struct {
	TripFile string     `yaml:"trip_file"`
	Keys     KeysConfig `yaml:"keys"`
	TUI      TUIConfig  `yaml:"tui"`
	DataDir  string     `yaml:"-"` // set by caller, not from config file
}

// KeysConfig maps point list actions to key names as reported by Bubble Tea
// (for example "enter", "esc", "ctrl+s"). Each action accepts several keys.
type KeysConfig struct {
	Expand   []string `yaml:"expand"`
	Favorite []string `yaml:"favorite"`
	Submit   []string `yaml:"submit"`
	Rollup   []string `yaml:"rollup"`
	Delete   []string `yaml:"delete"`
	Cancel   []string `yaml:"cancel"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme       string `yaml:"theme"`
	DefaultSort string `yaml:"default_sort"`
	Watch       bool   `yaml:"watch"` // reload the trip file when it changes on disk
}

// DefaultKeys returns the built-in key bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Expand:   []string{"enter", "e"},
		Favorite: []string{"f"},
		Submit:   []string{"ctrl+s"},
		Rollup:   []string{"ctrl+r"},
		Delete:   []string{"ctrl+d"},
		Cancel:   []string{"esc"},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Keys: DefaultKeys(),
		TUI: TUIConfig{
			Theme:       styles.DefaultTheme,
			DefaultSort: string(trip.SortDay),
			Watch:       true,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
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

	if c.TripFile == "" && c.DataDir != "" {
		c.TripFile = filepath.Join(c.DataDir, "trip.yaml")
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.DefaultSort == "" {
		c.TUI.DefaultSort = defaults.TUI.DefaultSort
	}

	// An explicitly empty list falls back to the default keys for that action.
	fill := func(dst *[]string, def []string) {
		if len(*dst) == 0 {
			*dst = def
		}
	}
	fill(&c.Keys.Expand, defaults.Keys.Expand)
	fill(&c.Keys.Favorite, defaults.Keys.Favorite)
	fill(&c.Keys.Submit, defaults.Keys.Submit)
	fill(&c.Keys.Rollup, defaults.Keys.Rollup)
	fill(&c.Keys.Delete, defaults.Keys.Delete)
	fill(&c.Keys.Cancel, defaults.Keys.Cancel)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.TripFile == "" {
		return fmt.Errorf("trip_file cannot be empty")
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme (available: %v)", c.TUI.Theme, styles.ThemeNames())
	}

	if _, err := trip.ParseSortType(c.TUI.DefaultSort); err != nil {
		return fmt.Errorf("tui.default_sort: %w", err)
	}

	return nil
}

// SortType returns the configured default sort. Load guarantees it is valid.
func (c *Config) SortType() trip.SortType {
	st, err := trip.ParseSortType(c.TUI.DefaultSort)
	if err != nil {
		return trip.SortDay
	}
	return st
}

// ResolveTripFile returns TripFile as an absolute path. Relative paths are
// resolved against the directory of the config file.
func (c *Config) ResolveTripFile(configPath string) string {
	if filepath.IsAbs(c.TripFile) || configPath == "" {
		return c.TripFile
	}
	return filepath.Join(filepath.Dir(configPath), c.TripFile)
}
