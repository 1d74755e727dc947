package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	t.Setenv("PROMQ_CONFIG", t.TempDir())

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerURL != "http://localhost:9090" {
		t.Errorf("Load() server_url = %q, want default", cfg.ServerURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Load() timeout = %s, want 30s", cfg.Timeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMQ_CONFIG", dir)

	content := "server_url: https://prom.example.com\ntimeout: 10s\nauth:\n  type: bearer\n  token: tok-123\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerURL != "https://prom.example.com" {
		t.Errorf("Load() server_url = %q", cfg.ServerURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Load() timeout = %s, want 10s", cfg.Timeout)
	}
	if cfg.Auth.Type != AuthTypeBearer || cfg.Auth.Token != "tok-123" {
		t.Errorf("Load() auth = %+v", cfg.Auth)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMQ_CONFIG", dir)

	content := "server_url: https://prom.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PROMQ_SERVER_URL", "http://other:9090")
	t.Setenv("PROMQ_TIMEOUT", "5s")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerURL != "http://other:9090" {
		t.Errorf("Load() server_url = %q, want env override", cfg.ServerURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Load() timeout = %s, want env override", cfg.Timeout)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("PROMQ_CONFIG", t.TempDir())
	loader := NewLoader()

	cfg := DefaultConfig()
	cfg.ServerURL = "http://prom:9090"
	cfg.Auth = AuthConfig{Type: AuthTypeBasic, Username: "alice", Password: "secret"}

	if err := loader.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.ServerURL != cfg.ServerURL {
		t.Errorf("round trip server_url = %q, want %q", loaded.ServerURL, cfg.ServerURL)
	}
	if loaded.Auth.Username != "alice" {
		t.Errorf("round trip auth = %+v", loaded.Auth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "default is valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "empty server url",
			mutate:  func(cfg *Config) { cfg.ServerURL = "" },
			wantErr: true,
		},
		{
			name:    "missing scheme",
			mutate:  func(cfg *Config) { cfg.ServerURL = "localhost:9090" },
			wantErr: true,
		},
		{
			name:    "unknown auth type",
			mutate:  func(cfg *Config) { cfg.Auth.Type = "digest" },
			wantErr: true,
		},
		{
			name:    "basic auth without username",
			mutate:  func(cfg *Config) { cfg.Auth.Type = AuthTypeBasic },
			wantErr: true,
		},
		{
			name:    "bearer auth without token",
			mutate:  func(cfg *Config) { cfg.Auth.Type = AuthTypeBearer },
			wantErr: true,
		},
		{
			name: "bearer auth with token",
			mutate: func(cfg *Config) {
				cfg.Auth.Type = AuthTypeBearer
				cfg.Auth.Token = "tok"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
