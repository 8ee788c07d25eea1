package sensitive

// Codec marshals records for one boundary (storage, API, export).
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/bson").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
