// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/Dorantes98/movie-info-search/internal/httpcache"
	"github.com/Dorantes98/movie-info-search/internal/omdb"
)

// Config holds the application configuration.
type Config struct {
	API APIConfig `toml:"api"`
	UI  UIConfig  `toml:"ui"`
}

// APIConfig holds movie-metadata service settings.
type APIConfig struct {
	Key            string `toml:"key"`             // OMDb API key
	BaseURL        string `toml:"base_url"`        // service endpoint
	TimeoutSeconds int    `toml:"timeout_seconds"` // per-request timeout
	CacheEntries   int    `toml:"cache_entries"`   // response cache size, 0 disables
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration. The API key has no
// default; it comes from the config file or the environment.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        omdb.DefaultBaseURL,
			TimeoutSeconds: 15,
			CacheEntries:   httpcache.DefaultMaxEntries,
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "movie-info-search", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config. OMDB_API_KEY
// is honored as the conventional key variable; MOVIESEARCH_API_KEY wins
// when both are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OMDB_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("MOVIESEARCH_API_KEY"); v != "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("MOVIESEARCH_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("MOVIESEARCH_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// Validate checks if the configuration is valid. An empty API key is
// allowed here; the UI and CLI surface their own guidance for it.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("timeout_seconds must be positive")
	}
	if c.API.CacheEntries < 0 {
		return errors.New("cache_entries cannot be negative")
	}
	return nil
}

// HasAPIKey returns true if an API key is configured.
func (c *Config) HasAPIKey() bool {
	return c.API.Key != ""
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
