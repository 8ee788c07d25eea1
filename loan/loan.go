// Package loan defines the origination records that carry sensitive fields.
//
// Struct tags declare how each field is protected when a record crosses a
// boundary: SSNs and account numbers are encrypted for storage and masked
// for review screens, and password hashes are redacted before display.
package loan

import "time"

// Status is the lifecycle state of an application.
type Status string

// Application statuses.
const (
	StatusDraft       Status = "draft"
	StatusSubmitted   Status = "submitted"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusDenied      Status = "denied"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusDenied:
		return true
	}
	return false
}

// Purpose is what the loan is for.
type Purpose string

// Loan purposes.
const (
	PurposePurchase  Purpose = "purchase"
	PurposeRefinance Purpose = "refinance"
	PurposeCashOut   Purpose = "cash_out"
)

// Address is a postal address.
type Address struct {
	Street string `json:"street" bson:"street" xml:"Street"`
	City   string `json:"city" bson:"city" xml:"City"`
	State  string `json:"state" bson:"state" xml:"State"`
	Zip    string `json:"zip" bson:"zip" xml:"Zip"`
}

// Borrower is a party to an application. The SSN is held as plaintext in
// memory and as an envelope at rest.
type Borrower struct {
	FirstName     string    `json:"first_name" bson:"first_name" xml:"FirstName"`
	LastName      string    `json:"last_name" bson:"last_name" xml:"LastName"`
	Email         string    `json:"email" bson:"email" xml:"Email" send.mask:"email"`
	Phone         string    `json:"phone" bson:"phone" xml:"Phone" send.mask:"phone"`
	SSN           string    `json:"ssn" bson:"ssn" xml:"SSN" store.encrypt:"aesgcm" load.decrypt:"aesgcm" send.mask:"ssn"`
	DateOfBirth   time.Time `json:"date_of_birth" bson:"date_of_birth" xml:"DateOfBirth"`
	MaritalStatus string    `json:"marital_status" bson:"marital_status" xml:"MaritalStatus"`
	AnnualIncome  int64     `json:"annual_income" bson:"annual_income" xml:"AnnualIncome"`
}

// Clone implements sensitive.Cloner.
func (b Borrower) Clone() Borrower { return b }

// FullName returns "First Last".
func (b Borrower) FullName() string {
	switch {
	case b.FirstName == "":
		return b.LastName
	case b.LastName == "":
		return b.FirstName
	default:
		return b.FirstName + " " + b.LastName
	}
}

// Application is a mortgage application. Amounts are in cents.
type Application struct {
	ID              string    `json:"id" bson:"_id" xml:"ID,attr"`
	Status          Status    `json:"status" bson:"status" xml:"Status"`
	Purpose         Purpose   `json:"purpose" bson:"purpose" xml:"Purpose"`
	LoanAmount      int64     `json:"loan_amount" bson:"loan_amount" xml:"LoanAmount"`
	PropertyValue   int64     `json:"property_value" bson:"property_value" xml:"PropertyValue"`
	PropertyAddress Address   `json:"property_address" bson:"property_address" xml:"PropertyAddress"`
	Borrower        Borrower  `json:"borrower" bson:"borrower" xml:"Borrower"`
	CoBorrower      *Borrower `json:"co_borrower,omitempty" bson:"co_borrower,omitempty" xml:"CoBorrower,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at" bson:"submitted_at" xml:"SubmittedAt"`
	ReviewerNotes   []string  `json:"reviewer_notes,omitempty" bson:"reviewer_notes,omitempty" xml:"ReviewerNotes>Note,omitempty"`
}

// Clone implements sensitive.Cloner.
func (a Application) Clone() Application {
	c := a
	if a.CoBorrower != nil {
		co := *a.CoBorrower
		c.CoBorrower = &co
	}
	if a.ReviewerNotes != nil {
		c.ReviewerNotes = append([]string(nil), a.ReviewerNotes...)
	}
	return c
}

// Submit moves a draft to submitted and stamps the time.
func (a *Application) Submit(now time.Time) bool {
	if a.Status != StatusDraft {
		return false
	}
	a.Status = StatusSubmitted
	a.SubmittedAt = now.UTC()
	return true
}

// AccountType is the kind of deposit account.
type AccountType string

// Account types.
const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
)

// BankAccount is an asset account disclosed on an application. The balance
// is in cents.
type BankAccount struct {
	ID            string      `json:"id" bson:"_id" xml:"ID,attr"`
	ApplicationID string      `json:"application_id" bson:"application_id" xml:"ApplicationID"`
	Institution   string      `json:"institution" bson:"institution" xml:"Institution"`
	AccountType   AccountType `json:"account_type" bson:"account_type" xml:"AccountType"`
	AccountNumber string      `json:"account_number" bson:"account_number" xml:"AccountNumber" store.encrypt:"aesgcm" load.decrypt:"aesgcm" send.mask:"account"`
	RoutingNumber string      `json:"routing_number" bson:"routing_number" xml:"RoutingNumber" send.mask:"account"`
	Balance       int64       `json:"balance" bson:"balance" xml:"Balance"`
}

// Clone implements sensitive.Cloner.
func (a BankAccount) Clone() BankAccount { return a }

// Role is a user's access level.
type Role string

// User roles.
const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// CanReview reports whether the role may open another customer's
// application.
func (r Role) CanReview() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// User is an account holder. Password arrives in plaintext on sign-up, is
// hashed on receive and never leaves in a response.
type User struct {
	ID       string `json:"id" bson:"_id" xml:"ID,attr"`
	Email    string `json:"email" bson:"email" xml:"Email"`
	Name     string `json:"name" bson:"name" xml:"Name"`
	Role     Role   `json:"role" bson:"role" xml:"Role"`
	Password string `json:"password" bson:"password_hash" xml:"-" receive.hash:"bcrypt" send.redact:"[REDACTED]"`
}

// Clone implements sensitive.Cloner.
func (u User) Clone() User { return u }
