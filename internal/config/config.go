// Package config provides application configuration loaded from the environment.
package config

import (
	"errors"
	"fmt"
)

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// RulesPath is the INI file holding question ids and sport rules.
	RulesPath string
	// APISecret guards the routes that write teams. Empty disables the guard.
	APISecret string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:    LoadServerConfigFromEnv(),
		Logger:    LoadLoggerConfigFromEnv(),
		GinMode:   GetEnv("GIN_MODE", "release"),
		RulesPath: GetEnv("TEAMS_CONFIG", "configs/teams.conf"),
		APISecret: GetEnv("API_SECRET", ""),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	if c.RulesPath == "" {
		return errors.New("TEAMS_CONFIG must not be empty")
	}

	return nil
}
