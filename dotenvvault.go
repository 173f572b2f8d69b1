// Package dotenvvault loads application configuration from an encrypted,
// version-controlled .env.vault file, decrypting it at process startup with
// the key supplied through the DOTENV_KEY environment variable.
//
// When no DOTENV_KEY is set, or no .env.vault file exists in the current
// directory, a regular plaintext .env file is loaded instead.
package dotenvvault

import (
	"log/slog"
	"os"

	"github.com/allisson/dotenv-vault/internal/config"
	"github.com/allisson/dotenv-vault/internal/envstore"
	"github.com/allisson/dotenv-vault/internal/vault/usecase"
)

// Load loads the .env.vault file from the current directory into the process
// environment, falling back to a regular .env file when no vault resolution
// is possible.
//
// Variables already present in the environment are preserved. Use Overload to
// let vault or file values win instead.
func Load() error {
	return newLoader().Load()
}

// Overload loads the .env.vault file from the current directory into the
// process environment, falling back to a regular .env file when no vault
// resolution is possible, overriding any existing variables of the same name.
func Overload() error {
	return newLoader().Overload()
}

func newLoader() *usecase.Loader {
	cfg := config.Load()
	return usecase.NewLoader(envstore.NewOSStore(), newLogger(cfg), cfg.Debug)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	// Advisory lines go to stderr so they never mix with a child program's stdout.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}
