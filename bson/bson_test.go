package bson

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

type borrower struct {
	ID  string `bson:"_id"`
	SSN string `bson:"ssn"`
}

func TestContentType(t *testing.T) {
	if got := New().ContentType(); got != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", got, "application/bson")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()
	original := borrower{ID: "app-1", SSN: "00112233445566778899aabbccddeeff:00112233445566778899aabbccddeeff:abcd"}

	data, err := c.Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	// The output is a document the driver can read directly.
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		t.Fatalf("Marshal() produced an invalid document: %v", err)
	}
	if got := raw.Lookup("ssn").StringValue(); got != original.SSN {
		t.Errorf("ssn = %q, want %q", got, original.SSN)
	}

	var restored borrower
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip = %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var v borrower
	if err := New().Unmarshal([]byte("invalid bson"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
