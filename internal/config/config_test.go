package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.Backend != BackendJSONFile {
		t.Fatalf("default backend = %q, want %q", cfg.Storage.Backend, BackendJSONFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"storage":{"backend":"sqlite","sqlite_path":"x.db"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite || cfg.Storage.SQLitePath != "x.db" {
		t.Fatalf("overrides not applied: %+v", cfg.Storage)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("untouched defaults should survive, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"jsonfile without path", func(c *Config) { c.Storage.FilePath = "" }},
		{"supabase without creds", func(c *Config) {
			c.Storage.Backend = BackendSupabase
			c.Storage.SupabaseURL = ""
			c.Storage.SupabaseKey = ""
		}},
		{"non-positive timeout", func(c *Config) { c.Source.RequestTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
