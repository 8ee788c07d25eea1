package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/loan"
)

// BankAccounts stores asset accounts. Account numbers are persisted as
// envelopes.
type BankAccounts struct {
	repo *repository[loan.BankAccount]
}

// NewBankAccounts returns a BankAccounts store on db.
func NewBankAccounts(db *mongo.Database, enc sensitive.Encryptor) (*BankAccounts, error) {
	repo, err := newRepository[loan.BankAccount](db, BankAccountsCollection, enc)
	if err != nil {
		return nil, err
	}
	return &BankAccounts{repo: repo}, nil
}

// Save encrypts and upserts acct. On error nothing is written.
func (s *BankAccounts) Save(ctx context.Context, acct *loan.BankAccount) error {
	if acct == nil {
		return ErrMissingID
	}
	return s.repo.save(ctx, acct.ID, acct)
}

// Get returns the decrypted account with id, or ErrNotFound.
func (s *BankAccounts) Get(ctx context.Context, id string) (*loan.BankAccount, error) {
	return s.repo.get(ctx, id)
}

// ListByApplication returns the accounts disclosed on an application.
func (s *BankAccounts) ListByApplication(ctx context.Context, applicationID string) ([]*loan.BankAccount, error) {
	return s.repo.find(ctx, bson.M{"application_id": applicationID})
}

// Review returns the account with id as JSON with the account and routing
// numbers masked.
func (s *BankAccounts) Review(ctx context.Context, id string) ([]byte, error) {
	return s.repo.reviewView(ctx, id)
}
