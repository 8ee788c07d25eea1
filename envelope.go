package sensitive

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Envelope layout constants.
const (
	// IVSize is the GCM nonce length used by FieldCodec.
	IVSize = 16

	// TagSize is the GCM authentication tag length.
	TagSize = 16

	envelopeSeparator = ":"
	envelopeSegments  = 3
)

// Envelope is the at-rest form of one encrypted value. Its string form is
// hex(iv):hex(tag):hex(ciphertext) in lowercase hex and is what gets
// persisted in place of the plaintext.
type Envelope struct {
	IV         []byte
	Tag        []byte
	Ciphertext []byte
}

// String renders the envelope in its persisted form.
func (e Envelope) String() string {
	return hex.EncodeToString(e.IV) + envelopeSeparator +
		hex.EncodeToString(e.Tag) + envelopeSeparator +
		hex.EncodeToString(e.Ciphertext)
}

// ParseEnvelope splits a persisted envelope into its parts.
// Anything other than three non-empty hex segments with a 16-byte IV and a
// 16-byte tag is rejected with ErrInvalidEnvelopeFormat.
func ParseEnvelope(s string) (Envelope, error) {
	parts := strings.Split(s, envelopeSeparator)
	if len(parts) != envelopeSegments {
		return Envelope{}, fmt.Errorf("%w: expected %d segments, got %d",
			ErrInvalidEnvelopeFormat, envelopeSegments, len(parts))
	}

	names := [envelopeSegments]string{"iv", "tag", "ciphertext"}
	decoded := make([][]byte, envelopeSegments)
	for i, part := range parts {
		if part == "" {
			return Envelope{}, fmt.Errorf("%w: empty %s segment", ErrInvalidEnvelopeFormat, names[i])
		}
		b, err := hex.DecodeString(part)
		if err != nil {
			return Envelope{}, fmt.Errorf("%w: %s segment is not hex", ErrInvalidEnvelopeFormat, names[i])
		}
		decoded[i] = b
	}

	env := Envelope{IV: decoded[0], Tag: decoded[1], Ciphertext: decoded[2]}
	if len(env.IV) != IVSize {
		return Envelope{}, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidEnvelopeFormat, IVSize, len(env.IV))
	}
	if len(env.Tag) != TagSize {
		return Envelope{}, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrInvalidEnvelopeFormat, TagSize, len(env.Tag))
	}
	return env, nil
}

// IsEnvelope reports whether s parses as an envelope. It says nothing about
// whether s decrypts under any particular key.
func IsEnvelope(s string) bool {
	_, err := ParseEnvelope(s)
	return err == nil
}
