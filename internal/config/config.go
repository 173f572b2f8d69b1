// Package config provides loader configuration through environment variables.
package config

import (
	"github.com/allisson/go-env"
)

// Config holds the loader's own configuration.
//
// These variables tune the loader itself and are read from the process
// environment directly; they never come from the vault being loaded.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// Debug marks a development configuration. It suppresses the advisory
	// warning about running without DOTENV_KEY.
	Debug bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		LogLevel: env.GetString("LOG_LEVEL", "info"),
		Debug:    env.GetBool("DOTENV_VAULT_DEBUG", false),
	}
}
