// Package json provides the JSON codec used for review API responses and
// form submissions.
package json

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/zoobzio/sensitive"
)

// Option configures the JSON codec.
type Option func(*jsonCodec)

// Strict rejects input carrying fields the target type does not declare, or
// trailing data after the first value. Use it for request bodies passed to
// Receive.
func Strict() Option {
	return func(c *jsonCodec) {
		c.strict = true
	}
}

// Indent pretty-prints output with the given indent.
func Indent(indent string) Option {
	return func(c *jsonCodec) {
		c.indent = indent
	}
}

type jsonCodec struct {
	strict bool
	indent string
}

// New returns a JSON codec.
func New(opts ...Option) sensitive.Codec {
	c := &jsonCodec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return json.MarshalIndent(v, "", c.indent)
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return json.Unmarshal(data, v)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("json: trailing data after value")
	}
	return nil
}
