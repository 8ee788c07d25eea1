// Package main provides the operator CLI for sensitive field protection.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/cmd/sensitive/commands"
	"github.com/zoobzio/sensitive/internal/config"
)

func main() {
	cfg := config.Load()
	logger := commands.NewLogger(cfg)
	os.Exit(run(context.Background(), os.Args, cfg, logger))
}

// run executes the CLI for args and returns the process exit code. Failures
// are logged through logger.
func run(ctx context.Context, args []string, cfg *config.Config, logger *slog.Logger) int {
	valueFlag := &cli.StringFlag{
		Name:  "value",
		Value: "",
		Usage: "Value to process (read from stdin when omitted)",
	}

	cmd := &cli.Command{
		Name:    "sensitive",
		Usage:   "Encrypt, decrypt and mask sensitive loan fields",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "generate-key",
				Usage: "Generate a new ENCRYPTION_KEY",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateKey(commands.DefaultIO())
				},
			},
			{
				Name:  "encrypt",
				Usage: "Encrypt a value into an iv:tag:ciphertext envelope",
				Flags: []cli.Flag{valueFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunEncrypt(
						commands.NewCodec(cfg, logger),
						logger,
						commands.DefaultIO(),
						cmd.String("value"),
					)
				},
			},
			{
				Name:  "decrypt",
				Usage: "Decrypt an envelope",
				Flags: []cli.Flag{valueFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDecrypt(
						commands.NewCodec(cfg, logger),
						logger,
						commands.DefaultIO(),
						cmd.String("value"),
					)
				},
			},
			{
				Name:  "mask",
				Usage: "Print the masked display form of a value",
				Flags: []cli.Flag{
					valueFlag,
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Value:   "data",
						Usage:   "Mask type: ssn, account, data, email or phone",
					},
					&cli.IntFlag{
						Name:  "visible",
						Value: sensitive.DefaultVisibleChars,
						Usage: "Trailing characters left visible by the data mask",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMask(
						commands.DefaultIO(),
						cmd.String("type"),
						cmd.Int("visible"),
						cmd.String("value"),
					)
				},
			},
			{
				Name:  "review",
				Usage: "Print the masked review view of a stored record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "kind",
						Aliases: []string{"k"},
						Value:   commands.KindApplication,
						Usage:   "Record kind: application or bank-account",
					},
					&cli.StringFlag{
						Name:     "id",
						Required: true,
						Usage:    "Record id",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.ReviewFromConfig(
						ctx,
						cfg,
						logger,
						commands.DefaultIO(),
						cmd.String("kind"),
						cmd.String("id"),
					)
				},
			},
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		logger.Error("application error", slog.Any("error", err))
		return 1
	}
	return 0
}
