package sensitive

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// Encryptor protects a single field value. Encrypt output is persisted
// verbatim; Decrypt accepts exactly what Encrypt produced.
type Encryptor interface {
	// Encrypt returns the at-rest form of plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt recovers the plaintext from its at-rest form.
	Decrypt(envelope string) (string, error)
}

// FieldCodec encrypts short sensitive strings (SSNs, account numbers) with
// AES-256-GCM and a 16-byte random IV per call.
//
// The key is derived from the injected Config on every call and never
// cached, so a FieldCodec holds no mutable state and is safe for concurrent
// use.
type FieldCodec struct {
	cfg  Config
	rand io.Reader
}

// NewFieldCodec returns a codec bound to cfg.
func NewFieldCodec(cfg Config) *FieldCodec {
	return &FieldCodec{cfg: cfg, rand: rand.Reader}
}

// Config returns the configuration the codec was built with.
func (c *FieldCodec) Config() Config {
	return c.cfg
}

// Encrypt returns the envelope string for plaintext. Every failure wraps
// ErrEncryptionFailed; a missing production key also matches
// ErrMissingEncryptionKey. Callers must abort the write on error.
func (c *FieldCodec) Encrypt(plaintext string) (string, error) {
	gcm, err := c.aead()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return "", fmt.Errorf("%w: generate iv: %w", ErrEncryptionFailed, err)
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	split := len(sealed) - TagSize

	return Envelope{
		IV:         iv,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}.String(), nil
}

// Decrypt verifies and decrypts an envelope produced by Encrypt.
// Malformed input fails with ErrInvalidEnvelopeFormat; a tag mismatch or wrong
// key fails with ErrDecryptionFailed. No plaintext is returned on error.
func (c *FieldCodec) Decrypt(envelope string) (string, error) {
	env, err := ParseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	gcm, err := c.aead()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+len(env.Tag))
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := gcm.Open(nil, env.IV, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

// aead derives the key and builds the GCM instance for one operation.
func (c *FieldCodec) aead() (cipher.AEAD, error) {
	key, err := DeriveKey(c.cfg)
	if err != nil {
		return nil, err
	}
	defer zero(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, err
	}
	return gcm, nil
}
