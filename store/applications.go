package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/loan"
)

// Applications stores loan applications. Borrower SSNs are persisted as
// envelopes.
type Applications struct {
	repo *repository[loan.Application]
}

// NewApplications returns an Applications store on db. enc protects the
// SSN fields, usually a *sensitive.FieldCodec.
func NewApplications(db *mongo.Database, enc sensitive.Encryptor) (*Applications, error) {
	repo, err := newRepository[loan.Application](db, ApplicationsCollection, enc)
	if err != nil {
		return nil, err
	}
	return &Applications{repo: repo}, nil
}

// Save encrypts and upserts app. On error nothing is written.
func (s *Applications) Save(ctx context.Context, app *loan.Application) error {
	if app == nil {
		return ErrMissingID
	}
	return s.repo.save(ctx, app.ID, app)
}

// Get returns the decrypted application with id, or ErrNotFound.
func (s *Applications) Get(ctx context.Context, id string) (*loan.Application, error) {
	return s.repo.get(ctx, id)
}

// ListByStatus returns every application in status, decrypted.
func (s *Applications) ListByStatus(ctx context.Context, status loan.Status) ([]*loan.Application, error) {
	return s.repo.find(ctx, bson.M{"status": status})
}

// Review returns the application with id as JSON with SSNs, emails and
// phone numbers masked.
func (s *Applications) Review(ctx context.Context, id string) ([]byte, error) {
	return s.repo.reviewView(ctx, id)
}
