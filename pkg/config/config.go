package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the optional on-disk configuration for the planner CLI. When no
// file is given the defaults below apply and the provider client falls back
// to its own environment lookup for credentials.
type Config struct {
	Providers map[string]ProviderConfig `json:"providers"`
}

type ProviderConfig struct {
	APIKey  string `json:"api_key"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Default returns the configuration used when no config file is present:
// a single enabled openai provider with no static credentials.
func Default() *Config {
	return &Config{
		Providers: map[string]ProviderConfig{
			"openai": {Enabled: true},
		},
	}
}

// Load reads a JSON config file.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	return &cfg, nil
}

// GetDefaultProvider returns the first enabled provider.
func (c *Config) GetDefaultProvider() (string, ProviderConfig) {
	for name, p := range c.Providers {
		if p.Enabled {
			return name, p
		}
	}
	return "", ProviderConfig{}
}
