// Package config loads and saves workspace configuration from
// .zenith/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
)

const configFileName = "config.yaml"

// Config holds workspace-level settings. A missing config file yields
// Default(); unknown theme names fall back to the default theme at lookup.
type Config struct {
	// Theme is the name of the active theme.
	Theme string `yaml:"theme"`

	// Themes holds user-defined themes, keyed by name. They shadow the
	// built-in themes on name collision.
	Themes map[string]board.Theme `yaml:"themes,omitempty"`
}

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "dark"

// builtinThemes are always available without configuration.
var builtinThemes = map[string]board.Theme{
	"dark": {
		Name:               "dark",
		HueOffset:          210,
		PhaseSaturation:    0.45,
		PhaseLightness:     0.35,
		SubPhaseSaturation: 0.55,
		SubPhaseLightness:  0.55,
	},
	"light": {
		Name:               "light",
		HueOffset:          30,
		PhaseSaturation:    0.55,
		PhaseLightness:     0.80,
		SubPhaseSaturation: 0.65,
		SubPhaseLightness:  0.65,
	},
	"solarized": {
		Name:               "solarized",
		HueOffset:          192,
		PhaseSaturation:    0.35,
		PhaseLightness:     0.40,
		SubPhaseSaturation: 0.50,
		SubPhaseLightness:  0.60,
	},
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Theme: DefaultThemeName}
}

// Load reads config.yaml from workDir. A missing file is not an error and
// returns Default().
func Load(workDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(workDir, configFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultThemeName
	}
	return cfg, nil
}

// Save atomically writes config.yaml into workDir.
func Save(workDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(workDir, configFileName)
	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// ActiveTheme resolves the configured theme. User-defined themes take
// precedence over built-ins; an unknown name falls back to the default
// theme rather than failing.
func (c *Config) ActiveTheme() board.Theme {
	if t, ok := c.Themes[c.Theme]; ok {
		t.Name = c.Theme
		return t
	}
	if t, ok := builtinThemes[c.Theme]; ok {
		return t
	}
	return builtinThemes[DefaultThemeName]
}

// ThemeNames lists the available theme names, built-ins first and custom
// themes sorted after them.
func (c *Config) ThemeNames() []string {
	names := []string{"dark", "light", "solarized"}
	seen := map[string]bool{"dark": true, "light": true, "solarized": true}

	var custom []string
	for name := range c.Themes {
		if !seen[name] {
			custom = append(custom, name)
		}
	}
	sort.Strings(custom)
	return append(names, custom...)
}
