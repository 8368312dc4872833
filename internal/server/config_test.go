package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want memory", cfg.Store.Backend)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL.Duration)
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
addr = ":9090"
log_level = "debug"

[store]
backend = "mongo"
uri = "mongodb://localhost:27017"
database = "beliefnet"

[cache]
backend = "redis"
addr = "localhost:6379"
ttl = "30s"
`
	path := filepath.Join(t.TempDir(), "beliefnetd.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Store.Backend != "mongo" || cfg.Store.Database != "beliefnet" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.TTL.Duration != 30*time.Second {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	// A file that only overrides the listen address keeps every other
	// default.
	path := filepath.Join(t.TempDir(), "partial.toml")
	if err := os.WriteFile(path, []byte(`addr = ":7070"`+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want :7070", cfg.Addr)
	}
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want the memory default", cfg.Store.Backend)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig should fail for a missing file")
	}
}

func TestLoadConfigBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[cache]\nttl = \"soon\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should reject an unparseable duration")
	}
}
