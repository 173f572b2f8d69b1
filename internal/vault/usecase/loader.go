// Package usecase orchestrates vault resolution: locating the vault,
// trialling credential candidates, and merging the recovered configuration
// into the environment store.
package usecase

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"

	"github.com/allisson/dotenv-vault/internal/envstore"
	"github.com/allisson/dotenv-vault/internal/errors"
	"github.com/allisson/dotenv-vault/internal/vault/domain"
	"github.com/allisson/dotenv-vault/internal/vault/service"
)

// Loader loads configuration from an encrypted .env.vault file, falling back
// to a plaintext .env file when no vault resolution is possible.
type Loader struct {
	locator   *service.Locator
	decoder   *service.Decoder
	decryptor *service.Decryptor
	store     envstore.Store
	logger    *slog.Logger
}

// NewLoader creates a Loader writing into the given environment store.
func NewLoader(store envstore.Store, logger *slog.Logger, debug bool) *Loader {
	return &Loader{
		locator:   service.NewLocator(store, logger, debug),
		decoder:   service.NewDecoder(),
		decryptor: service.NewDecryptor(),
		store:     store,
		logger:    logger,
	}
}

// Load merges the vault or fallback configuration into the store without
// overriding variables that are already present.
func (l *Loader) Load() error {
	return l.load(false)
}

// Overload merges the vault or fallback configuration into the store,
// overriding variables that are already present.
func (l *Loader) Overload() error {
	return l.load(true)
}

func (l *Loader) load(override bool) error {
	plaintext, fromVault, err := l.resolve()
	if err != nil {
		return err
	}

	var env map[string]string
	if fromVault {
		env, err = godotenv.UnmarshalBytes(plaintext)
		if err != nil {
			return errors.Wrap(err, "failed to parse decrypted vault contents")
		}
	} else {
		env, err = godotenv.Read(domain.EnvFileName)
		if err != nil {
			return errors.Wrap(err, "failed to read .env file")
		}
	}

	return l.apply(env, override)
}

// resolve runs the vault resolution pipeline once. It returns the decrypted
// plaintext and true when a vault was resolved, or (nil, false, nil) when
// DOTENV_KEY is unset or no vault file exists and the caller should fall back
// to the plaintext .env file. A DOTENV_KEY that is set but blank still enters
// resolution and fails there, so the misconfiguration surfaces instead of
// being masked by a successful fallback load.
func (l *Loader) resolve() ([]byte, bool, error) {
	location := l.locator.Locate()

	if !location.CredentialPresent || !location.VaultExists {
		return nil, false, nil
	}

	l.logger.Info("loading env from encrypted .env.vault")

	plaintext, err := l.resolveVault(location)
	if err != nil {
		return nil, false, err
	}
	return plaintext, true, nil
}

// resolveVault trials each credential URI in order and returns the first
// successful decryption.
//
// Any per-candidate failure (parse, extraction, or decryption) is swallowed
// after a debug log line, so a bad credential early in a multi-key list never
// blocks a valid one later. When every candidate fails the aggregate result
// is domain.ErrInvalidKey, deliberately without per-candidate detail.
func (l *Loader) resolveVault(location service.Location) ([]byte, error) {
	entries, err := l.decoder.ReadVault(location.VaultPath)
	if err != nil {
		l.logger.Debug("failed to read vault file", slog.Any("error", err))
		return nil, domain.ErrInvalidKey
	}

	for i, raw := range strings.Split(location.CredentialList, ",") {
		credential, err := domain.ParseCredential(raw)
		if err != nil {
			l.logger.Debug("skipping credential", slog.Int("index", i), slog.Any("error", err))
			continue
		}

		ciphertext, err := l.decoder.Extract(entries, credential.EnvironmentKey)
		if err != nil {
			l.logger.Debug("skipping credential", slog.Int("index", i), slog.Any("error", err))
			continue
		}

		plaintext, err := l.decryptor.Decrypt(ciphertext, credential.Key)
		if err != nil {
			l.logger.Debug("skipping credential", slog.Int("index", i), slog.Any("error", err))
			continue
		}

		return plaintext, nil
	}

	return nil, domain.ErrInvalidKey
}

func (l *Loader) apply(env map[string]string, override bool) error {
	for key, value := range env {
		var err error
		if override {
			err = l.store.Set(key, value)
		} else {
			err = l.store.SetIfAbsent(key, value)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to set environment variable %s", key)
		}
	}
	return nil
}
