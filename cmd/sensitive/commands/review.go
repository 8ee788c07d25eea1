package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/internal/config"
	"github.com/zoobzio/sensitive/store"
)

// Record kinds accepted by the review command.
const (
	KindApplication = "application"
	KindBankAccount = "bank-account"
)

// Reviewer renders the masked review view of one stored record.
type Reviewer interface {
	Review(ctx context.Context, id string) ([]byte, error)
}

// RunReview prints the masked view of record id. Errors are sanitized with
// sensitive.SafeError when they come from protecting a field, so output
// pasted into tickets carries no cryptographic detail.
func RunReview(ctx context.Context, r Reviewer, logger *slog.Logger, io IOTuple, id string) error {
	if id == "" {
		return store.ErrMissingID
	}

	view, err := r.Review(ctx, id)
	if err != nil {
		logger.Error("review failed", slog.String("id", id), slog.Any("error", err))
		if sensitive.IsSensitiveDataError(err) {
			return sensitive.SafeError(err)
		}
		return err
	}

	_, _ = fmt.Fprintln(io.Writer, string(view))
	return nil
}

// ReviewFromConfig connects to the configured database, runs RunReview for
// the store matching kind, and disconnects.
func ReviewFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger, io IOTuple, kind, id string) error {
	client, db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Warn("mongodb disconnect failed", slog.Any("error", err))
		}
	}()

	codec := NewCodec(cfg, logger)

	var r Reviewer
	switch kind {
	case KindApplication:
		r, err = store.NewApplications(db, codec)
	case KindBankAccount:
		r, err = store.NewBankAccounts(db, codec)
	default:
		return fmt.Errorf("unknown record kind %q (want %s or %s)", kind, KindApplication, KindBankAccount)
	}
	if err != nil {
		return err
	}

	return RunReview(ctx, r, logger, io, id)
}
