// Package config handles loading and saving user configuration for olelo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for olelo.
type Config struct {
	FoldCase    bool   `yaml:"fold_case"`              // Upper-case input before pronouncing
	HistoryPath string `yaml:"history_path,omitempty"` // SQLite history file; empty disables history
	WordsFile   string `yaml:"words_file,omitempty"`   // Extra lexicon entries (.jsonl, .yaml or .txt)
	Format      string `yaml:"format"`                 // Default batch output: text, json, csv, tsv
	Workers     int    `yaml:"workers"`                // Batch worker count
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		FoldCase: true,
		Format:   "text",
		Workers:  4,
	}
}

// Load reads config.yaml from dir. Missing keys keep their default values.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault is Load, falling back to Default when the file is absent.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to config.yaml in dir.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "csv", "tsv":
	default:
		return fmt.Errorf("unknown format: %s", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "olelo"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
