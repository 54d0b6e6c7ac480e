// Package credstore persists per-user upstream API keys, encrypted at rest.
// A caller links a key once and receives an opaque bearer token; every later
// MCP session presents the token and the store resolves it back to the key.
// Two backends implement the same interface: SQLite for single-node
// deployments and Postgres for shared ones.
package credstore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Store maps bearer tokens to upstream API keys. Implementations encrypt the
// key before it touches disk.
type Store interface {
	// Put stores (or replaces) the API key linked to a token.
	Put(ctx context.Context, token, apiKey string) error
	// Get resolves a token. ok is false when the token is unknown; that is
	// not an error.
	Get(ctx context.Context, token string) (apiKey string, ok bool, err error)
	// Delete unlinks a token. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
	Close() error
}

// cipherBox seals and opens API keys with AES-256-GCM. Blobs are
// nonce-prefixed so each row carries everything needed to decrypt it.
type cipherBox struct {
	aead cipher.AEAD
}

// newCipherBox builds a cipherBox from a hex-encoded 32-byte key.
func newCipherBox(hexKey string) (*cipherBox, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating gcm: %w", err)
	}
	return &cipherBox{aead: aead}, nil
}

func (c *cipherBox) seal(plaintext string) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

func (c *cipherBox) open(blob []byte) (string, error) {
	if len(blob) < c.aead.NonceSize() {
		return "", errors.New("encrypted blob too short")
	}
	nonce, ciphertext := blob[:c.aead.NonceSize()], blob[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting credential: %w", err)
	}
	return string(plaintext), nil
}
