// Package xml provides an XML codec for loan file exports.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/sensitive"
)

type xmlCodec struct{}

// New returns an XML codec. Documents it produces start with the standard
// XML declaration.
func New() sensitive.Codec {
	return &xmlCodec{}
}

func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil || len(body) == 0 {
		return body, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, xml.Header...)
	return append(out, body...), nil
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
