package service

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/allisson/dotenv-vault/internal/errors"
	"github.com/allisson/dotenv-vault/internal/vault/domain"
)

// Decoder extracts per-environment ciphertext entries from a vault file.
//
// The vault file shares the lexical format of a regular .env file, so reading
// it is delegated to godotenv; no custom file-format logic lives here.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// ReadVault parses the vault file into its entry map.
//
// The file is read once per resolution and the returned entries are searched
// in memory for each credential candidate.
func (d *Decoder) ReadVault(path string) (map[string]string, error) {
	entries, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read vault file")
	}
	return entries, nil
}

// Extract returns the raw base64 ciphertext stored under environmentKey,
// e.g. "DOTENV_VAULT_PRODUCTION". A miss yields domain.ErrEnvironmentNotFound
// annotated with the entry name looked up.
func (d *Decoder) Extract(entries map[string]string, environmentKey string) (string, error) {
	ciphertext, ok := entries[environmentKey]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrEnvironmentNotFound, environmentKey)
	}
	return ciphertext, nil
}
