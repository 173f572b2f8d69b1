package service

import (
	"encoding/base64"
	"encoding/hex"

	"github.com/allisson/dotenv-vault/internal/vault/domain"
)

// Decryptor recovers plaintext configuration bytes from a vault ciphertext entry.
type Decryptor struct{}

// NewDecryptor creates a new Decryptor.
func NewDecryptor() *Decryptor {
	return &Decryptor{}
}

// Decrypt decodes and decrypts a base64 vault entry with the given key material.
//
// The steps run in strict order, each with a distinct failure mode:
//  1. key material shorter than 64 characters -> domain.ErrInvalidKey
//  2. trailing 64 characters hex-decode to the 32-byte AES key -> domain.ErrInvalidHex
//  3. standard padded base64 decode of the entry -> domain.ErrInvalidBase64
//  4. split the first 12 bytes as the nonce, authenticate and decrypt the
//     rest -> domain.ErrDecryptionFailed
//
// A decoded payload too short to hold a nonce is reported as
// domain.ErrDecryptionFailed rather than a distinct failure, so callers learn
// nothing about which part of a bad payload failed. The derived key bytes are
// zeroed before returning.
func (d *Decryptor) Decrypt(ciphertextB64, keyMaterial string) ([]byte, error) {
	if len(keyMaterial) < domain.KeyHexLength {
		return nil, domain.ErrInvalidKey
	}

	key, err := hex.DecodeString(keyMaterial[len(keyMaterial)-domain.KeyHexLength:])
	if err != nil {
		return nil, domain.ErrInvalidHex
	}
	defer domain.Zero(key)

	payload, err := base64.StdEncoding.DecodeString(ciphertextB64)
	if err != nil {
		return nil, domain.ErrInvalidBase64
	}

	if len(payload) < domain.NonceSize {
		return nil, domain.ErrDecryptionFailed
	}
	nonce := payload[:domain.NonceSize]
	ciphertext := payload[domain.NonceSize:]

	aead, err := NewAESGCM(key)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}

	plaintext, err := aead.Decrypt(ciphertext, nonce)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}

	return plaintext, nil
}
