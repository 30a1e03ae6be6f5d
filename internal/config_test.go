package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	pkgconfig "github.com/starford/ansuz/pkg/config"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.App.HTTP.Port != 8080 {
		t.Errorf("default port = %d", cfg.App.HTTP.Port)
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Errorf("default backend = %q", cfg.Store.Backend)
	}
	if cfg.Auth.AuthEnabled() {
		t.Error("auth enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.App.HTTP.Port = 0 }, true},
		{"port too large", func(c *Config) { c.App.HTTP.Port = 70000 }, true},
		{"unknown backend", func(c *Config) { c.Store.Backend = "postgres" }, true},
		{"sqlite without path", func(c *Config) { c.Store.Backend = StoreBackendSQLite }, true},
		{"sqlite with path", func(c *Config) {
			c.Store.Backend = StoreBackendSQLite
			c.Store.SQLitePath = "/tmp/notes.db"
		}, false},
		{"unknown auth mode", func(c *Config) { c.Auth.Mode = "basic" }, true},
		{"token mode without token", func(c *Config) { c.Auth.Mode = AuthModeToken }, true},
		{"token mode with token", func(c *Config) {
			c.Auth.Mode = AuthModeToken
			c.Auth.Token = "s3cret"
		}, false},
		{"negative max tokens", func(c *Config) { c.Summarizer.MaxTokens = -1 }, true},
		{"negative timeout", func(c *Config) { c.Summarizer.TimeoutSeconds = -5 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestStoreBackendDefaultsToMemory(t *testing.T) {
	cfg := StoreConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Backend != StoreBackendMemory {
		t.Errorf("backend = %q, want memory", cfg.Backend)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("TEST_SUMMARIZER_KEY", "sk-test-123")

	raw := `
app:
  log_level: DEBUG
  http:
    port: 9090
store:
  backend: sqlite
  sqlite_path: /tmp/ansuz.db
summarizer:
  base_url: https://api.openai.com/v1
  api_key: ${TEST_SUMMARIZER_KEY}
  model: gpt-4o-mini
  max_tokens: 512
  timeout_seconds: 15
auth:
  mode: token
  token: local-dev
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.App.LogLevel)
	}
	if cfg.App.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.App.HTTP.Port)
	}
	if cfg.Store.Backend != StoreBackendSQLite || cfg.Store.SQLitePath != "/tmp/ansuz.db" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Summarizer.APIKey != "sk-test-123" {
		t.Errorf("api key not expanded: %q", cfg.Summarizer.APIKey)
	}
	if cfg.Summarizer.Timeout().Seconds() != 15 {
		t.Errorf("timeout = %v", cfg.Summarizer.Timeout())
	}
	if !cfg.Auth.AuthEnabled() {
		t.Error("auth should be enabled")
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("app:\n  http:\n    port: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err == nil {
		t.Error("expected validation error for port 0")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(filepath.Join(t.TempDir(), "nope.yaml"), cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHTTPAddress(t *testing.T) {
	cfg := HTTPConfig{Port: 8080}
	if got := cfg.Address(); got != ":8080" {
		t.Errorf("Address() = %q", got)
	}
}
