package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

// AESGCMCipher wraps AES-256-GCM for vault payloads.
//
// The vault wire format fixes the AEAD parameters: a 256-bit key, a 12-byte
// nonce prefixed to the ciphertext, a 16-byte authentication tag appended to
// it, and no associated data. The cipher instance is stateless and safe for
// concurrent use.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher instance.
// The key must be exactly 32 bytes (256 bits).
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != 32 {
		return nil, errors.New("key must be exactly 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt seals plaintext with a freshly generated 12-byte nonce.
//
// The returned ciphertext has the 16-byte authentication tag appended, the
// layout vault entries use once the nonce is prefixed. Loading never
// encrypts; this path exists for vault tooling and round-trip tests.
func (a *AESGCMCipher) Encrypt(plaintext []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, a.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = a.aead.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext with the given nonce, verifying the appended
// authentication tag. A wrong key, tampered ciphertext, or truncated tag all
// fail authentication and return an error without plaintext.
func (a *AESGCMCipher) Decrypt(ciphertext, nonce []byte) ([]byte, error) {
	plaintext, err := a.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}
