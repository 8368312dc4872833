package server

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the beliefnetd server configuration, loaded from TOML.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`

	Store StoreConfig `toml:"store"`
	Cache CacheConfig `toml:"cache"`
}

// StoreConfig selects and configures the network store backend.
type StoreConfig struct {
	// Backend is "mongo" or "memory".
	Backend  string `toml:"backend"`
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// CacheConfig selects and configures the document cache backend.
type CacheConfig struct {
	// Backend is "none", "file", or "redis".
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	Addr    string `toml:"addr"`
	Pass    string `toml:"password"`
	DB      int    `toml:"db"`

	// TTL bounds how long a cached document may serve reads.
	TTL duration `toml:"ttl"`
}

// duration wraps time.Duration for TOML decoding of strings like "5m".
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML.
func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// in-memory store, no cache, info logging on :8080.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Store:    StoreConfig{Backend: "memory"},
		Cache:    CacheConfig{Backend: "none", TTL: duration{5 * time.Minute}},
	}
}

// LoadConfig reads a TOML config file, applying defaults for absent keys.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
