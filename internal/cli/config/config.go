// Package config provides configuration management for the fleetdash CLI.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import "time"

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 10     // seconds
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPort    = 5000
)

// Config holds all CLI configuration options.
type Config struct {
	BaseURL        string       `koanf:"base_url"`
	TimeoutSeconds int          `koanf:"timeout"`
	OutputFormat   string       `koanf:"output"`
	Verbose        bool         `koanf:"verbose"`
	Serve          *ServeConfig `koanf:"serve"`
}

// ServeConfig holds configuration for the API server.
type ServeConfig struct {
	Host  string `koanf:"host"`
	Port  int    `koanf:"port"`
	Data  string `koanf:"data"`
	Watch bool   `koanf:"watch"`
}

// Timeout returns the HTTP client timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetServe returns a copy of the serve config with defaults applied for
// unset values. The stored config is left untouched.
func (c *Config) GetServe() *ServeConfig {
	s := ServeConfig{Port: DefaultPort}
	if c.Serve != nil {
		s = *c.Serve
		if s.Port == 0 {
			s.Port = DefaultPort
		}
	}
	return &s
}
