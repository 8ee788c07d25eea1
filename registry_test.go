package sensitive_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/sensitive"
	"github.com/zoobzio/sensitive/bson"
	"github.com/zoobzio/sensitive/json"
)

type cachedBorrower struct {
	Name string `json:"name" bson:"name"`
	SSN  string `json:"ssn" bson:"ssn" store.encrypt:"aesgcm" load.decrypt:"aesgcm" send.mask:"ssn"`
}

func (b cachedBorrower) Clone() cachedBorrower { return b }

func TestUse_Caching(t *testing.T) {
	sensitive.Reset()

	p1, err := sensitive.Use[cachedBorrower](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	p2, err := sensitive.Use[cachedBorrower](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	if p1 != p2 {
		t.Error("Use() should return the cached processor")
	}
}

func TestUse_PerContentType(t *testing.T) {
	sensitive.Reset()

	api, _ := sensitive.Use[cachedBorrower](json.New())
	storage, _ := sensitive.Use[cachedBorrower](bson.New())

	if api == nil || storage == nil {
		t.Fatal("Use() returned nil")
	}
	if any(api) == any(storage) {
		t.Error("different content types should get different processors")
	}
	if storage.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q", storage.ContentType())
	}
}

func TestUse_OptionsOnFirstCallOnly(t *testing.T) {
	sensitive.Reset()

	codec := sensitive.NewFieldCodec(sensitive.Config{})
	p, err := sensitive.Use[cachedBorrower](json.New(), sensitive.WithEncryptor(sensitive.EncryptAESGCM, codec))
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}

	again, _ := sensitive.Use[cachedBorrower](json.New())
	if again != p {
		t.Error("Use() without options should return the configured processor")
	}
}

func TestReset(t *testing.T) {
	p1, _ := sensitive.Use[cachedBorrower](json.New())
	sensitive.Reset()
	p2, _ := sensitive.Use[cachedBorrower](json.New())

	if p1 == p2 {
		t.Error("Reset() should clear the cache")
	}
}

type miscardedAccount struct {
	Number string `json:"number" send.mask:"card"`
}

func (a miscardedAccount) Clone() miscardedAccount { return a }

func TestUse_BuildErrorNotCached(t *testing.T) {
	sensitive.Reset()

	for i := 0; i < 2; i++ {
		p, err := sensitive.Use[miscardedAccount](json.New())
		if !errors.Is(err, sensitive.ErrInvalidTag) {
			t.Fatalf("Use() attempt %d error = %v, want ErrInvalidTag", i+1, err)
		}
		if p != nil {
			t.Fatalf("Use() attempt %d returned a processor", i+1)
		}
	}
}
