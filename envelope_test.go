package sensitive

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEnvelope_String(t *testing.T) {
	env := Envelope{
		IV:         bytes.Repeat([]byte{0xAB}, IVSize),
		Tag:        bytes.Repeat([]byte{0x01}, TagSize),
		Ciphertext: []byte{0xDE, 0xAD},
	}
	want := strings.Repeat("ab", IVSize) + ":" + strings.Repeat("01", TagSize) + ":dead"
	if got := env.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseEnvelope(t *testing.T) {
	iv := strings.Repeat("ab", IVSize)
	tag := strings.Repeat("01", TagSize)

	env, err := ParseEnvelope(iv + ":" + tag + ":DEAD")
	if err != nil {
		t.Fatalf("ParseEnvelope() error: %v", err)
	}
	if !bytes.Equal(env.Ciphertext, []byte{0xDE, 0xAD}) {
		t.Errorf("Ciphertext = %x", env.Ciphertext)
	}
	if len(env.IV) != IVSize || len(env.Tag) != TagSize {
		t.Errorf("IV/Tag lengths = %d/%d", len(env.IV), len(env.Tag))
	}
}

func TestParseEnvelope_Invalid(t *testing.T) {
	iv := strings.Repeat("ab", IVSize)
	tag := strings.Repeat("01", TagSize)

	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"one segment", "not-a-valid-envelope", "expected 3 segments, got 1"},
		{"two segments", "a:b", "expected 3 segments, got 2"},
		{"four segments", iv + ":" + tag + ":00:00", "expected 3 segments, got 4"},
		{"empty iv", ":" + tag + ":00", "empty iv segment"},
		{"empty tag", iv + "::00", "empty tag segment"},
		{"empty ciphertext", iv + ":" + tag + ":", "empty ciphertext segment"},
		{"non-hex tag", iv + ":" + strings.Repeat("zz", TagSize) + ":00", "tag segment is not hex"},
		{"odd hex ciphertext", iv + ":" + tag + ":abc", "ciphertext segment is not hex"},
		{"short iv", "abcd:" + tag + ":00", "iv must be 16 bytes, got 2"},
		{"short tag", iv + ":abcd:00", "tag must be 16 bytes, got 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope(tt.input)
			if !errors.Is(err, ErrInvalidEnvelopeFormat) {
				t.Fatalf("ParseEnvelope() error = %v, want ErrInvalidEnvelopeFormat", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestIsEnvelope(t *testing.T) {
	envelope, err := testFieldCodec().Encrypt("123-45-6789")
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	if !IsEnvelope(envelope) {
		t.Error("IsEnvelope() should accept Encrypt output")
	}
	for _, s := range []string{"", "123-45-6789", "a:b", "not-a-valid-envelope"} {
		if IsEnvelope(s) {
			t.Errorf("IsEnvelope(%q) = true", s)
		}
	}
}
