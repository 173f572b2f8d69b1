package domain

import (
	"net/url"
	"strings"
)

// Credential holds the decryption instructions extracted from a single
// credential URI of the form:
//
//	dotenv://:key_<hex>@vault.dotenv.org/vault/.env.vault?environment=production
//
// The password component of the authority is the decryption key; the
// environment query parameter selects which vault entry the key unlocks.
// A Credential is immutable after parsing.
type Credential struct {
	// Key is the raw key material. Only its trailing 64 hex characters are
	// significant for decryption; any prefix (e.g. "key_") is ignored there.
	Key string

	// Environment is the environment name exactly as given in the URI.
	Environment string

	// EnvironmentKey is the vault entry name derived from Environment,
	// e.g. "DOTENV_VAULT_PRODUCTION".
	EnvironmentKey string
}

// ParseCredential parses a credential URI into a Credential.
//
// It is a pure function with defined failure modes:
//   - ErrMalformedURI if the string is not a valid URI
//   - ErrInvalidScheme if the scheme is not "dotenv"
//   - ErrMissingKey if the authority carries no password component
//   - ErrMissingEnvironment if there is no environment query parameter
//
// No other query parameters are inspected.
func ParseCredential(uri string) (Credential, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Credential{}, ErrMalformedURI
	}

	if u.Scheme != CredentialScheme {
		return Credential{}, ErrInvalidScheme
	}

	key, ok := u.User.Password()
	if !ok {
		return Credential{}, ErrMissingKey
	}

	environment := u.Query().Get("environment")
	if environment == "" {
		return Credential{}, ErrMissingEnvironment
	}

	return Credential{
		Key:            key,
		Environment:    environment,
		EnvironmentKey: VaultEntryPrefix + strings.ToUpper(environment),
	}, nil
}
