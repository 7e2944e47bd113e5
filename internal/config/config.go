// Package config loads titlezip settings and scans directories for candidate files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mydehq/titlezip/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "titlezip"
	configFileName = "config.yml"

	// DefaultPattern selects ZIP archives.
	DefaultPattern = "*.zip"
)

// GetDefaults returns the built-in configuration.
func GetDefaults() *types.Config {
	return &types.Config{
		Pattern: DefaultPattern,
	}
}

// GlobalPath returns the location of the global config file, honoring
// XDG_CONFIG_HOME.
func GlobalPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}

// Load reads a config file. Fields missing from the file keep their defaults.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.ConfigError{Path: path, Err: err}
	}

	var fileCfg types.Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, types.ConfigError{Path: path, Err: err}
	}
	fileCfg.Path = path

	cfg := GetDefaults().Merge(&fileCfg)
	if _, err := filepath.Match(cfg.Pattern, ""); err != nil {
		return nil, types.ConfigError{Path: path, Err: fmt.Errorf("pattern %q: %w", cfg.Pattern, err)}
	}
	return cfg, nil
}

// LoadGlobal loads the global config file. A missing file is not an error
// and yields the defaults.
func LoadGlobal() (*types.Config, error) {
	path, err := GlobalPath()
	if err != nil {
		return GetDefaults(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return GetDefaults(), nil
	}
	return cfg, err
}

// Save writes cfg as YAML, creating parent directories as needed.
func Save(path string, cfg *types.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
