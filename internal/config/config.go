// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (pointed at by CONFIG_FILE)
//  2. Environment variables (fallback)
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the entire application configuration
type Config struct {
	YNAB    YNABConfig    `yaml:"ynab"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// YNABConfig holds YNAB API configuration
type YNABConfig struct {
	// APIKey is the personal access token. Required.
	APIKey string `yaml:"api_key"`

	// DefaultBudgetID, when set, is what the "default" budget selector
	// resolves to.
	DefaultBudgetID string `yaml:"default_budget_id"`
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	Name string `yaml:"name"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and parses a config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${YNAB_API_KEY})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv loads configuration from environment variables only
func FromEnv() *Config {
	cfg := &Config{
		YNAB: YNABConfig{
			APIKey:          os.Getenv("YNAB_API_KEY"),
			DefaultBudgetID: getEnv("YNAB_DEFAULT_BUDGET_ID", os.Getenv("DEFAULT_BUDGET_ID")),
		},
		Server: ServerConfig{
			Name: os.Getenv("MCP_SERVER_NAME"),
		},
		Logging: LoggingConfig{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}
	cfg.applyDefaults()
	return cfg
}

// LoadOrEnv loads from the file named by CONFIG_FILE when present,
// otherwise from environment variables.
func LoadOrEnv() (*Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return Load(path)
	}
	return FromEnv(), nil
}

func (c *Config) applyDefaults() {
	if c.Server.Name == "" {
		c.Server.Name = "YNAB MCP Server"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
