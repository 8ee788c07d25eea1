package sensitive

// Config carries everything key derivation needs. It is injected into
// NewFieldCodec so the codec never reads process state on its own.
type Config struct {
	// Secret is the operator secret. Empty means no secret is configured.
	// A 64-character hex string is used directly as raw key material;
	// anything else is stretched with PBKDF2.
	Secret string

	// Production makes a missing Secret fatal instead of falling back to
	// DevelopmentSecret.
	Production bool
}

// HasSecret reports whether an operator secret is configured.
func (c Config) HasSecret() bool {
	return c.Secret != ""
}
