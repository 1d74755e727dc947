package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultDir = ".promq"
	configFile = "config.yaml"
)

// Loader handles loading and saving the config file.
type Loader struct {
	baseDir string
}

// NewLoader creates a new config loader.
// The base directory is resolved in this order:
//  1. PROMQ_CONFIG environment variable.
//  2. User home directory (~/).
//  3. /tmp/promq-fallback (containerized environments without a home dir).
//
// The fallback ensures Load still returns defaults with env var overrides
// applied when no home directory exists.
func NewLoader() *Loader {
	if baseDir := os.Getenv("PROMQ_CONFIG"); baseDir != "" {
		return &Loader{baseDir: baseDir}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		return &Loader{baseDir: filepath.Join(homeDir, defaultDir)}
	}

	return &Loader{baseDir: "/tmp/promq-fallback"}
}

// Path returns the path to the config file.
func (l *Loader) Path() string {
	return filepath.Join(l.baseDir, configFile)
}

// Load loads the configuration.
// Returns the default config if the file doesn't exist, then applies
// environment variable overrides for layered configuration.
func (l *Loader) Load() (*Config, error) {
	path := l.Path()

	var cfg *Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		cfg = DefaultConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration.
// Uses 0600 permissions since the file may contain credentials.
func (l *Loader) Save(cfg *Config) error {
	path := l.Path()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
