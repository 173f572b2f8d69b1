package domain

import (
	"github.com/allisson/dotenv-vault/internal/errors"
)

// Vault resolution error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors and
// carry the stable, greppable prefixes users rely on when debugging a failed
// load (NOT_FOUND_DOTENV_KEY, INVALID_DOTENV_KEY, DECRYPTION_FAILED, ...).
var (
	// ErrKeyNotFound indicates the DOTENV_KEY environment variable is not set.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "NOT_FOUND_DOTENV_KEY: cannot find environment variable DOTENV_KEY")

	// ErrVaultNotFound indicates no vault file path could be determined.
	ErrVaultNotFound = errors.Wrap(errors.ErrNotFound, "NOT_FOUND_DOTENV_VAULT: cannot find vault file")

	// ErrMalformedURI indicates the credential URI could not be parsed at all.
	ErrMalformedURI = errors.Wrap(errors.ErrInvalidInput, "INVALID_DOTENV_KEY: failed to parse uri")

	// ErrInvalidScheme indicates the credential URI scheme is not "dotenv".
	ErrInvalidScheme = errors.Wrap(errors.ErrInvalidInput, "INVALID_DOTENV_KEY: invalid scheme")

	// ErrMissingKey indicates the credential URI carries no password component.
	ErrMissingKey = errors.Wrap(errors.ErrInvalidInput, "INVALID_DOTENV_KEY: missing key part")

	// ErrMissingEnvironment indicates the credential URI has no environment
	// query parameter.
	ErrMissingEnvironment = errors.Wrap(errors.ErrInvalidInput, "INVALID_DOTENV_KEY: missing environment part")

	// ErrEnvironmentNotFound indicates the vault file has no entry for the
	// requested environment. Callers annotate it with the entry name looked up.
	ErrEnvironmentNotFound = errors.Wrap(errors.ErrNotFound, "NOT_FOUND_DOTENV_ENVIRONMENT: cannot locate environment in vault file")

	// ErrInvalidKey indicates the decryption key is too short, or that every
	// candidate in a multi-key credential list failed.
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "INVALID_DOTENV_KEY: key must be valid")

	// ErrInvalidHex indicates the trailing 64 characters of the key are not hex.
	ErrInvalidHex = errors.Wrap(errors.ErrInvalidInput, "INVALID_DOTENV_KEY: failed to decode hex string")

	// ErrInvalidBase64 indicates the vault ciphertext entry is not valid base64.
	ErrInvalidBase64 = errors.Wrap(errors.ErrInvalidInput, "DECRYPTION_FAILED: failed to decode base64 string")

	// ErrDecryptionFailed indicates AEAD decryption failed.
	//
	// This covers a wrong key, tampered or truncated ciphertext, and payloads
	// too short to hold a nonce. The specific cause is deliberately not
	// disclosed to avoid leaking which part of the ciphertext failed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "DECRYPTION_FAILED: please check your DOTENV_KEY")
)
