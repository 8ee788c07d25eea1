// Package testing provides shared fixtures for tests of sensitive and its
// codecs.
package testing

import (
	"testing"
	"time"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/loan"
)

// TestSecret is a raw 64-hex key. Using it skips PBKDF2, which keeps tests
// fast.
const TestSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// Fixture values of the sensitive fields in SampleApplication and
// SampleBankAccount.
const (
	SampleSSN           = "123-45-6789"
	SampleCoBorrowerSSN = "987-65-4321"
	SampleAccountNumber = "000123456789"
)

// TestConfig returns a production configuration keyed with TestSecret.
func TestConfig() sensitive.Config {
	return sensitive.Config{Secret: TestSecret, Production: true}
}

// TestCodec returns a FieldCodec configured for testing. It fails the test
// if the codec cannot round-trip a value.
func TestCodec(t testing.TB) *sensitive.FieldCodec {
	t.Helper()
	codec := sensitive.NewFieldCodec(TestConfig())
	env, err := codec.Encrypt(SampleSSN)
	if err != nil {
		t.Fatalf("TestCodec: encrypt: %v", err)
	}
	if got, err := codec.Decrypt(env); err != nil || got != SampleSSN {
		t.Fatalf("TestCodec: decrypt = %q, %v", got, err)
	}
	return codec
}

// SampleApplication returns a submitted application with a co-borrower.
func SampleApplication() *loan.Application {
	return &loan.Application{
		ID:            "app-1001",
		Status:        loan.StatusSubmitted,
		Purpose:       loan.PurposePurchase,
		LoanAmount:    42000000,
		PropertyValue: 52500000,
		PropertyAddress: loan.Address{
			Street: "12 Elm St",
			City:   "Springfield",
			State:  "IL",
			Zip:    "62701",
		},
		Borrower: loan.Borrower{
			FirstName:     "Alice",
			LastName:      "Doe",
			Email:         "alice@example.com",
			Phone:         "(555) 123-4567",
			SSN:           SampleSSN,
			DateOfBirth:   time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC),
			MaritalStatus: "married",
			AnnualIncome:  12500000,
		},
		CoBorrower: &loan.Borrower{
			FirstName: "Bob",
			LastName:  "Doe",
			Email:     "bob@example.com",
			Phone:     "555-987-6543",
			SSN:       SampleCoBorrowerSSN,
		},
		SubmittedAt:   time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC),
		ReviewerNotes: []string{"income verified"},
	}
}

// SampleBankAccount returns a checking account attached to
// SampleApplication.
func SampleBankAccount() *loan.BankAccount {
	return &loan.BankAccount{
		ID:            "acct-1",
		ApplicationID: "app-1001",
		Institution:   "First Federal",
		AccountType:   loan.AccountChecking,
		AccountNumber: SampleAccountNumber,
		RoutingNumber: "021000021",
		Balance:       1250000,
	}
}
