// Package bson provides the BSON codec used to persist records in the
// document database.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/sensitive"
)

type bsonCodec struct{}

// New returns a BSON codec.
func New() sensitive.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document. v must be a struct, map or
// document type.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON document into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
