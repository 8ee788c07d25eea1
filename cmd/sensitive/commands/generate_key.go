package commands

import (
	"fmt"

	"github.com/zoobzio/sensitive"
)

// RunGenerateKey prints a fresh raw 32-byte key in the form expected by
// ENCRYPTION_KEY. The key is used directly, without PBKDF2.
//
// Output format:
//   - ENCRYPTION_KEY="<64 hex characters>"
func RunGenerateKey(io IOTuple) error {
	key, err := sensitive.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, "# Sensitive field encryption key")
	_, _ = fmt.Fprintln(io.Writer, "# Store this in your secrets manager. Changing it makes existing records unreadable.")
	_, _ = fmt.Fprintln(io.Writer)
	_, _ = fmt.Fprintf(io.Writer, "ENCRYPTION_KEY=\"%s\"\n", key)
	return nil
}
