// Package config provides configuration loading and validation for the
// matching engine's CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/match-engine/internal/types"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Scoring behavior
	AdaptiveWeighting     bool `json:"adaptive_weighting,omitempty"`
	LocationIntelligence  bool `json:"location_intelligence,omitempty"`
	StrictMode            bool `json:"strict_mode,omitempty"`
	PerComponentTimeoutMS int  `json:"per_component_timeout_ms,omitempty"`
	GlobalTimeoutMS       int  `json:"global_timeout_ms,omitempty"`

	// Static data
	WeightTable string `json:"weight_table,omitempty"` // path to a weight-table JSON file

	// Collaborators
	LocationServiceURL string `json:"location_service_url,omitempty"`
	LocationServiceKey string `json:"location_service_key,omitempty"`

	// Server
	Port       int    `json:"port,omitempty"`
	AuthSecret string `json:"auth_secret,omitempty"` // overridden by AUTH_SECRET env

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"`
	Debug    bool `json:"debug,omitempty"`
}

// Load reads configuration from a JSON file and applies environment
// overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{AdaptiveWeighting: true}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if secret := os.Getenv("AUTH_SECRET"); secret != "" {
		c.AuthSecret = secret
	}
	if url := os.Getenv("LOCATION_SERVICE_URL"); url != "" {
		c.LocationServiceURL = url
	}
	if key := os.Getenv("LOCATION_SERVICE_KEY"); key != "" {
		c.LocationServiceKey = key
	}
}

// Validate checks numeric ranges and cross-field consistency.
func (c *Config) Validate() error {
	if c.PerComponentTimeoutMS < 0 {
		return fmt.Errorf("config error: 'per_component_timeout_ms' must be non-negative")
	}
	if c.GlobalTimeoutMS < 0 {
		return fmt.Errorf("config error: 'global_timeout_ms' must be non-negative")
	}
	if c.PerComponentTimeoutMS > 0 && c.GlobalTimeoutMS > 0 &&
		c.PerComponentTimeoutMS > c.GlobalTimeoutMS {
		return fmt.Errorf("config error: per-component timeout exceeds the global timeout")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.LocationIntelligence && c.LocationServiceURL == "" {
		return fmt.Errorf("config error: 'location_intelligence' requires 'location_service_url'")
	}
	return nil
}

// MatchOptions converts the configuration into per-request options.
func (c *Config) MatchOptions() types.MatchOptions {
	return types.MatchOptions{
		AdaptiveWeighting:     c.AdaptiveWeighting,
		LocationIntelligence:  c.LocationIntelligence,
		StrictMode:            c.StrictMode,
		PerComponentTimeoutMS: c.PerComponentTimeoutMS,
		GlobalTimeoutMS:       c.GlobalTimeoutMS,
	}
}
