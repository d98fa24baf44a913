// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Interview behavior
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key (empty = rule-based only)
	BanksPath    string `json:"banks_path,omitempty"`     // Path to custom question banks JSON

	// Resume fetching
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds,omitempty"` // HTTP timeout for resume downloads

	// Rate limiting
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty"`   // Requests per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty"` // Burst allowance per client

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills empty fields from environment variables. File values win;
// the environment is a fallback so a config file can be partial.
func (c *Config) FromEnv() error {
	if c.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("invalid PORT: %v", err)
			}
			c.Port = port
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.BanksPath == "" {
		c.BanksPath = os.Getenv("QUESTION_BANKS_PATH")
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'fetch_timeout_seconds' must be non-negative")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'rate_limit_rps' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}

	if c.BanksPath != "" {
		if _, err := os.Stat(c.BanksPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: question banks file not found: %s", c.BanksPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.BanksPath == "" {
		result.BanksPath = defaults.BanksPath
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}
	if result.RateLimitRPS == 0 {
		if defaults.RateLimitRPS > 0 {
			result.RateLimitRPS = defaults.RateLimitRPS
		} else {
			result.RateLimitRPS = 5 // Default to 5 requests per second
		}
	}
	if result.RateLimitBurst == 0 {
		if defaults.RateLimitBurst > 0 {
			result.RateLimitBurst = defaults.RateLimitBurst
		} else {
			result.RateLimitBurst = 10
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
