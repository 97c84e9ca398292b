package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPatternFile is relative to the working directory
const DefaultPatternFile = "patterns/pattern.json"

// DefaultPatternLength is one bar of eighth notes in 4/4
const DefaultPatternLength = 8

// Config is the main configuration structure
type Config struct {
	PatternFile   string `json:"patternFile,omitempty"`
	PatternLength int    `json:"patternLength"`
	Palette       string `json:"palette,omitempty"` // GIMP .gpl file, empty = built-in
	Debug         bool   `json:"debug,omitempty"`
	DebugLog      string `json:"debugLog,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PatternFile:   DefaultPatternFile,
		PatternLength: DefaultPatternLength,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "strummy"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from the default path, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. Missing files yield defaults and
// fields left out of the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to the default path
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path
func (c *Config) SaveFile(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values a user could have typed by hand
func (c *Config) Validate() error {
	var errs []error
	if c.PatternFile == "" {
		errs = append(errs, errors.New("patternFile must not be empty"))
	}
	if c.PatternLength < 0 {
		errs = append(errs, fmt.Errorf("patternLength must be >= 0, got %d", c.PatternLength))
	}
	return errors.Join(errs...)
}
