// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// AuthTypeBasic and AuthTypeBearer are the supported authentication modes.
const (
	AuthTypeBasic  = "basic"
	AuthTypeBearer = "bearer"
)

// Config represents the ~/.promq/config.yaml config file.
type Config struct {
	ServerURL string        `yaml:"server_url" env:"PROMQ_SERVER_URL"`
	Timeout   time.Duration `yaml:"timeout,omitempty" env:"PROMQ_TIMEOUT"`
	Auth      AuthConfig    `yaml:"auth,omitempty"`
}

// AuthConfig contains optional authentication settings for the server.
type AuthConfig struct {
	Type     string `yaml:"type,omitempty" env:"PROMQ_AUTH_TYPE"`
	Username string `yaml:"username,omitempty" env:"PROMQ_AUTH_USERNAME"`
	Password string `yaml:"password,omitempty" env:"PROMQ_AUTH_PASSWORD"`
	Token    string `yaml:"token,omitempty" env:"PROMQ_AUTH_TOKEN"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		ServerURL: "http://localhost:9090",
		Timeout:   30 * time.Second,
	}
}

// Validate checks the configuration for obvious mistakes.
func Validate(cfg *Config) error {
	if cfg.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}

	u, err := url.Parse(cfg.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server_url %q (expected http(s)://host:port)", cfg.ServerURL)
	}

	switch cfg.Auth.Type {
	case "", AuthTypeBasic, AuthTypeBearer:
	default:
		return fmt.Errorf("invalid auth type %q (expected %q or %q)", cfg.Auth.Type, AuthTypeBasic, AuthTypeBearer)
	}

	if cfg.Auth.Type == AuthTypeBasic && cfg.Auth.Username == "" {
		return fmt.Errorf("auth username is required for basic auth")
	}
	if cfg.Auth.Type == AuthTypeBearer && cfg.Auth.Token == "" {
		return fmt.Errorf("auth token is required for bearer auth")
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %s", cfg.Timeout)
	}

	return nil
}
