// Package store persists loan records in MongoDB.
//
// Records pass through a sensitive.Processor on the way in and out: tagged
// fields are encrypted before a document is written, stored as envelopes,
// decrypted on Get and masked for Review. A record whose encryption fails is
// never written.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zoobzio/sensitive"
	sbson "github.com/zoobzio/sensitive/bson"
	sjson "github.com/zoobzio/sensitive/json"
)

// Collection names.
const (
	ApplicationsCollection = "applications"
	BankAccountsCollection = "bank_accounts"
)

var (
	// ErrNotFound indicates no document has the requested id.
	ErrNotFound = errors.New("not found")

	// ErrMissingID indicates a record without an id was passed to Save.
	ErrMissingID = errors.New("missing id")
)

// repository is the collection access shared by every record type.
type repository[T sensitive.Cloner[T]] struct {
	name   string
	coll   *mongo.Collection
	store  *sensitive.Processor[T] // bson, encrypts and decrypts
	review *sensitive.Processor[T] // json, masks and redacts
}

func newRepository[T sensitive.Cloner[T]](db *mongo.Database, name string, enc sensitive.Encryptor) (*repository[T], error) {
	if enc == nil {
		return nil, fmt.Errorf("%s: %w", name, sensitive.ErrMissingEncryptor)
	}

	storeProc, err := sensitive.NewProcessor[T](sbson.New(),
		sensitive.WithEncryptor(sensitive.EncryptAESGCM, enc))
	if err != nil {
		return nil, fmt.Errorf("%s: storage processor: %w", name, err)
	}
	if err := storeProc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: storage processor: %w", name, err)
	}

	// Send never encrypts, but validation covers every tagged field, so the
	// review processor needs the encryptor registered too.
	reviewProc, err := sensitive.NewProcessor[T](sjson.New(),
		sensitive.WithEncryptor(sensitive.EncryptAESGCM, enc))
	if err != nil {
		return nil, fmt.Errorf("%s: review processor: %w", name, err)
	}

	return &repository[T]{
		name:   name,
		coll:   db.Collection(name),
		store:  storeProc,
		review: reviewProc,
	}, nil
}

// save encrypts obj and upserts it under id.
func (r *repository[T]) save(ctx context.Context, id string, obj *T) error {
	if id == "" {
		return ErrMissingID
	}

	doc, err := r.store.Store(ctx, obj)
	if err != nil {
		return fmt.Errorf("save %s %s: %w", r.name, id, err)
	}

	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": id}, bson.Raw(doc), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save %s %s: %w", r.name, id, err)
	}
	return nil
}

// get loads and decrypts the document with id.
func (r *repository[T]) get(ctx context.Context, id string) (*T, error) {
	raw, err := r.coll.FindOne(ctx, bson.M{"_id": id}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s %s: %w", r.name, id, err)
	}

	obj, err := r.store.Load(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.name, id, err)
	}
	return obj, nil
}

// find loads and decrypts every document matching filter.
func (r *repository[T]) find(ctx context.Context, filter bson.M) ([]*T, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.name, err)
	}
	defer cursor.Close(ctx)

	var out []*T
	for cursor.Next(ctx) {
		obj, err := r.store.Load(ctx, cursor.Current)
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", r.name, err)
		}
		out = append(out, obj)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find %s: %w", r.name, err)
	}
	return out, nil
}

// reviewView renders the document with id as masked JSON.
func (r *repository[T]) reviewView(ctx context.Context, id string) ([]byte, error) {
	obj, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	view, err := r.review.Send(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("review %s %s: %w", r.name, id, err)
	}
	return view, nil
}
