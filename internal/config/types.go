// Package config provides configuration loading for wiredns using Viper.
// Configuration is loaded from YAML files with automatic environment variable binding.
//
// Environment variables use the WIREDNS_ prefix and underscore-separated keys:
//   - WIREDNS_SERVER_HOST -> server.host
//   - WIREDNS_SERVER_PORT -> server.port
//   - WIREDNS_API_API_KEY -> api.api_key
package config

import (
	"os"
	"strings"
)

// ServerConfig contains settings for the debug-API HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level"             mapstructure:"level"             json:"level"`
	Structured       bool              `yaml:"structured"        mapstructure:"structured"        json:"structured"`
	StructuredFormat string            `yaml:"structured_format" mapstructure:"structured_format" json:"structured_format"`
	IncludePID       bool              `yaml:"include_pid"       mapstructure:"include_pid"       json:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields"      mapstructure:"extra_fields"      json:"extra_fields,omitempty"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is intentionally treated as a secret and should not be returned by API endpoints.
type APIConfig struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
}

// StoreConfig contains settings for the capture-history store.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"  mapstructure:"server"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	API     APIConfig     `yaml:"api"     mapstructure:"api"`
	Store   StoreConfig   `yaml:"store"   mapstructure:"store"`
}

// ResolveConfigPath determines the config file path from flag or environment.
func ResolveConfigPath(flagValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if v := strings.TrimSpace(os.Getenv("WIREDNS_CONFIG")); v != "" {
		return v
	}
	return ""
}

// Load loads configuration from a YAML file with environment variable overrides.
// This is the main entry point for loading configuration.
//
// Configuration priority (highest to lowest):
//  1. Environment variables (WIREDNS_*)
//  2. Config file values
//  3. Default values
func Load(path string) (*Config, error) {
	return loadFromSource(path)
}
