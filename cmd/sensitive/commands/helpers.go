// Package commands contains CLI command implementations for the sensitive tool.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/internal/config"
)

// ErrNoInput indicates neither --value nor stdin supplied a value.
var ErrNoInput = errors.New("no input value")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// NewLogger returns a JSON logger on stderr at the configured level.
func NewLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// NewCodec builds the field codec for cfg. A missing key outside production
// is logged at error level on every invocation.
func NewCodec(cfg *config.Config, logger *slog.Logger) *sensitive.FieldCodec {
	codecCfg := cfg.Codec()
	if !codecCfg.HasSecret() && !codecCfg.Production {
		logger.Error("ENCRYPTION_KEY is not set, using the insecure development key",
			slog.String("app_env", cfg.AppEnv),
		)
	}
	return sensitive.NewFieldCodec(codecCfg)
}

// readValue returns value, or the first line of r when value is empty.
func readValue(value string, r io.Reader) (string, error) {
	if value != "" {
		return value, nil
	}
	if r == nil {
		return "", ErrNoInput
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", ErrNoInput
	}
	return line, nil
}
