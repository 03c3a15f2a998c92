// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Matcher names accepted by the "matcher" setting
const (
	MatcherSubstring = "substring"
	MatcherExact     = "exact"
)

// Defaults applied by MergeWithDefaults when neither the file nor the flags set a value
const (
	DefaultCatalogPath    = "models/skills_database.json"
	DefaultPort           = 8080
	DefaultCacheTTL       = 3600
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 10
	DefaultFitConcurrency = 4
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Catalog
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"` // Position catalog file, written on first run
	Matcher     string `json:"matcher,omitempty" yaml:"matcher,omitempty"`           // "substring" (default) or "exact"

	// Analysis
	Position       string `json:"position,omitempty" yaml:"position,omitempty"`               // Default target position
	FitConcurrency int    `json:"fit_concurrency,omitempty" yaml:"fit_concurrency,omitempty"` // Positions analyzed in parallel by "fit"

	// Infrastructure
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`                 // HTTP port for "serve"
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty" yaml:"redis_url,omitempty"`       // Report cache
	RabbitMQURL string `json:"rabbitmq_url,omitempty" yaml:"rabbitmq_url,omitempty"` // Analysis queue for "worker"

	// Limits
	CacheTTLSeconds int     `json:"cache_ttl_seconds,omitempty" yaml:"cache_ttl_seconds,omitempty"`
	RateLimitRPS    float64 `json:"rate_limit_rps,omitempty" yaml:"rate_limit_rps,omitempty"`
	RateLimitBurst  int     `json:"rate_limit_burst,omitempty" yaml:"rate_limit_burst,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file, or YAML when the extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Matcher {
	case "", MatcherSubstring, MatcherExact:
	default:
		return fmt.Errorf("config error: 'matcher' must be %q or %q, got %q", MatcherSubstring, MatcherExact, c.Matcher)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.FitConcurrency < 0 {
		return fmt.Errorf("config error: 'fit_concurrency' must be non-negative")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("config error: 'cache_ttl_seconds' must be non-negative")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'rate_limit_rps' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}

	if c.CatalogPath != "" {
		if info, err := os.Stat(c.CatalogPath); err == nil && info.IsDir() {
			return fmt.Errorf("config error: catalog path is a directory: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the built-in defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CatalogPath == "" {
		result.CatalogPath = firstNonEmpty(defaults.CatalogPath, DefaultCatalogPath)
	}
	if result.Matcher == "" {
		result.Matcher = firstNonEmpty(defaults.Matcher, MatcherSubstring)
	}
	if result.Position == "" {
		result.Position = defaults.Position
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.RabbitMQURL == "" {
		result.RabbitMQURL = defaults.RabbitMQURL
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = firstPositive(defaults.Port, DefaultPort)
	}
	if result.FitConcurrency == 0 {
		result.FitConcurrency = firstPositive(defaults.FitConcurrency, DefaultFitConcurrency)
	}
	if result.CacheTTLSeconds == 0 {
		result.CacheTTLSeconds = firstPositive(defaults.CacheTTLSeconds, DefaultCacheTTL)
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = firstPositive(defaults.RateLimitBurst, DefaultRateLimitBurst)
	}
	if result.RateLimitRPS == 0 {
		if defaults.RateLimitRPS > 0 {
			result.RateLimitRPS = defaults.RateLimitRPS
		} else {
			result.RateLimitRPS = DefaultRateLimitRPS
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FromEnv returns a Config holding the connection settings found in the environment
// (DATABASE_URL, REDIS_URL, RABBITMQ_URL). Use it as the defaults of MergeWithDefaults.
func FromEnv() Config {
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
