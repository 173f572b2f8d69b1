package service

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/dotenv-vault/internal/envstore"
	"github.com/allisson/dotenv-vault/internal/vault/domain"
)

// Location describes whether a vault decryption attempt should be made and
// where the vault file lives.
type Location struct {
	// CredentialPresent reports whether DOTENV_KEY is set at all. A variable
	// that is set but blank still counts as present: that is a
	// misconfiguration to surface during resolution, not a cue to fall back.
	CredentialPresent bool

	// CredentialList is the raw, whitespace-trimmed DOTENV_KEY material.
	CredentialList string

	// VaultPath is the expected vault file path, <cwd>/.env.vault.
	VaultPath string

	// VaultExists reports whether the vault file is present on disk.
	VaultExists bool
}

// Locator determines, from the environment store and filesystem state,
// whether vault resolution applies.
type Locator struct {
	store  envstore.Store
	logger *slog.Logger
	debug  bool
}

// NewLocator creates a Locator. In debug configuration the advisory warning
// about a missing DOTENV_KEY is suppressed.
func NewLocator(store envstore.Store, logger *slog.Logger, debug bool) *Locator {
	return &Locator{store: store, logger: logger, debug: debug}
}

// Locate reads DOTENV_KEY and computes the vault file path.
//
// Two advisory warnings may be emitted: one when no DOTENV_KEY is set outside
// debug configuration, and another when a DOTENV_KEY is set but the vault
// file is missing. Neither changes the outcome beyond selecting the fallback
// path, which is the caller's decision.
func (l *Locator) Locate() Location {
	location := Location{}

	if raw, ok := l.store.Lookup(domain.KeyEnvName); ok {
		location.CredentialPresent = true
		location.CredentialList = strings.TrimSpace(raw)
	}

	if cwd, err := os.Getwd(); err == nil {
		location.VaultPath = filepath.Join(cwd, domain.VaultFileName)
		if _, err := os.Stat(location.VaultPath); err == nil {
			location.VaultExists = true
		}
	}

	if !location.CredentialPresent {
		if !l.debug {
			l.logger.Warn(
				"you are using dotenv-vault in a production environment, but you haven't set DOTENV_KEY; run 'npx dotenv-vault keys' to view your DOTENV_KEY",
			)
		}
		return location
	}

	if !location.VaultExists {
		l.logger.Warn(
			"you set a DOTENV_KEY but you are missing a .env.vault file; run 'npx dotenv-vault build' to build it",
		)
	}

	return location
}
