package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that YAML decoding cannot.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Camera.MinDistance <= 0 || c.Camera.MaxDistance < c.Camera.MinDistance {
		return fmt.Errorf("invalid camera distance range [%g, %g]",
			c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	switch c.Camera.Mode {
	case "orbit", "freefly", "birdseye":
	default:
		return fmt.Errorf("unknown camera mode %q", c.Camera.Mode)
	}

	names := make(map[string]bool, len(c.Scene.Bodies))
	for _, b := range c.Scene.Bodies {
		if b.Name == "" {
			return fmt.Errorf("body with empty name")
		}
		if names[b.Name] {
			return fmt.Errorf("duplicate body name %q", b.Name)
		}
		names[b.Name] = true
	}
	for _, b := range c.Scene.Bodies {
		if b.Parent != "" && !names[b.Parent] {
			return fmt.Errorf("body %q references unknown parent %q", b.Name, b.Parent)
		}
		if b.Parent == b.Name {
			return fmt.Errorf("body %q orbits itself", b.Name)
		}
		if len(b.Colors) < 2 {
			return fmt.Errorf("body %q needs at least two palette colors", b.Name)
		}
		if b.Radius <= 0 {
			return fmt.Errorf("body %q has non-positive radius", b.Name)
		}
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Orrery")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Orrery")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "orrery")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "orrery")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
