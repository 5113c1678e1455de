package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level fintrack.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig locates the local database file.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a fintrack.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Path: filepath.Join(dir, "fintrack.db"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultDir returns the default data directory (~/.fintrack), honoring the
// FINTRACK_HOME environment variable.
func DefaultDir() (string, error) {
	if dir := os.Getenv("FINTRACK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".fintrack"), nil
}

// Resolve loads the config from dir, falling back to defaults when no
// config file exists yet.
func Resolve(dir string) (*Config, error) {
	path := filepath.Join(dir, "fintrack.yaml")
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(dir), nil
	}
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = filepath.Join(dir, "fintrack.db")
	}
	return cfg, nil
}
