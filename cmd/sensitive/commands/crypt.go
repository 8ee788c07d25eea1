package commands

import (
	"fmt"
	"log/slog"

	"github.com/zoobzio/sensitive"
)

// RunEncrypt encrypts one value and prints its envelope. The value comes
// from value or, when empty, the first line of io.Reader.
func RunEncrypt(enc sensitive.Encryptor, logger *slog.Logger, io IOTuple, value string) error {
	plaintext, err := readValue(value, io.Reader)
	if err != nil {
		return err
	}

	envelope, err := enc.Encrypt(plaintext)
	if err != nil {
		logger.Error("encrypt failed", slog.Any("error", err))
		return err
	}

	logger.Debug("value encrypted", slog.Int("envelope_length", len(envelope)))
	_, _ = fmt.Fprintln(io.Writer, envelope)
	return nil
}

// RunDecrypt decrypts one envelope and prints the plaintext.
func RunDecrypt(enc sensitive.Encryptor, logger *slog.Logger, io IOTuple, value string) error {
	envelope, err := readValue(value, io.Reader)
	if err != nil {
		return err
	}

	plaintext, err := enc.Decrypt(envelope)
	if err != nil {
		logger.Error("decrypt failed", slog.Any("error", err))
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, plaintext)
	return nil
}
