package sensitive

import (
	"context"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters. Changing any of these makes previously stored
// envelopes undecryptable.
const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// Salt is the application-wide PBKDF2 salt.
	Salt = "loan-origination-sensitive-field-salt"

	// Iterations is the PBKDF2 iteration count.
	Iterations = 100000

	// DevelopmentSecret is used when no secret is configured outside
	// production. It is public and protects nothing.
	DevelopmentSecret = "development-only-insecure-secret-change-me"
)

// rawKeyHexLen is the length of a hex-encoded raw key.
const rawKeyHexLen = KeySize * 2

// DeriveKey returns the 32-byte key for cfg.
//
// A missing secret is fatal in production (ErrMissingEncryptionKey). Outside
// production it emits SignalDevelopmentKey at error severity and derives the
// key from DevelopmentSecret. A 64-character hex secret is decoded directly;
// any other secret goes through PBKDF2-HMAC-SHA512.
func DeriveKey(cfg Config) ([]byte, error) {
	secret := cfg.Secret
	if secret == "" {
		if cfg.Production {
			return nil, ErrMissingEncryptionKey
		}
		emitDevelopmentKey(context.Background())
		secret = DevelopmentSecret
	}

	if raw, ok := decodeRawKey(secret); ok {
		return raw, nil
	}

	return pbkdf2.Key([]byte(secret), []byte(Salt), Iterations, KeySize, sha512.New), nil
}

// decodeRawKey returns the key bytes when secret is exactly 64 hex characters.
func decodeRawKey(secret string) ([]byte, bool) {
	if len(secret) != rawKeyHexLen {
		return nil, false
	}
	raw, err := hex.DecodeString(secret)
	if err != nil {
		return nil, false
	}
	return raw, true
}

// GenerateKey returns a fresh random key as 64 hex characters, suitable for
// Config.Secret. Intended for operators, not for use at runtime.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	encoded := hex.EncodeToString(key)
	zero(key)
	return encoded, nil
}

// zero overwrites key material once it is no longer needed.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
