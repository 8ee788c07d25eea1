// Package sensitive protects sensitive fields of loan-origination records.
//
// The core is FieldCodec, which encrypts short strings such as Social
// Security Numbers and bank account numbers with AES-256-GCM and renders
// them as envelopes:
//
//	hex(iv):hex(tag):hex(ciphertext)
//
// The IV and tag are 16 bytes each. The envelope string is what gets
// persisted in place of the plaintext.
//
// # Keys
//
// The key is derived from Config on every call. A 64-character hex secret
// is used directly; any other secret is stretched with
// PBKDF2-HMAC-SHA512 over a fixed application salt with 100000 iterations.
// With no secret, production configurations fail with
// ErrMissingEncryptionKey and development configurations fall back to
// DevelopmentSecret after emitting SignalDevelopmentKey at error severity.
// GenerateKey produces a fresh raw key for operators.
//
//	codec := sensitive.NewFieldCodec(sensitive.Config{Secret: key, Production: true})
//	env, err := codec.Encrypt("123-45-6789")
//	ssn, err := codec.Decrypt(env)
//
// # Masking
//
// MaskSSN, MaskAccountNumber and MaskSensitiveData produce partial display
// values for review screens. Prefer them over Decrypt whenever the full
// value is not needed.
//
// # Processor
//
// Processor applies encryption, decryption, hashing, masking and redaction
// to tagged struct fields as records cross a boundary:
//
//	receive.hash:"bcrypt"     - hash on receive (passwords)
//	load.decrypt:"aesgcm"     - decrypt on load from storage
//	store.encrypt:"aesgcm"    - encrypt on store
//	send.mask:"ssn"           - mask on send (ssn, account, data, email, phone)
//	send.redact:"[REDACTED]"  - replace on send
//
// For example:
//
//	type Borrower struct {
//	    Name string `bson:"name"`
//	    SSN  string `bson:"ssn" store.encrypt:"aesgcm" load.decrypt:"aesgcm" send.mask:"ssn"`
//	}
//
//	func (b Borrower) Clone() Borrower { return b }
//
//	proc, _ := sensitive.NewProcessor[Borrower](bson.New())
//	proc.SetEncryptor(sensitive.EncryptAESGCM, codec)
//	doc, _ := proc.Store(ctx, &b)  // SSN persisted as an envelope
//	back, _ := proc.Load(ctx, doc) // SSN decrypted
//
// Codec implementations live in the json, bson, msgpack, yaml and xml
// subpackages.
//
// # Errors
//
// Failures carry the sentinels ErrMissingEncryptionKey, ErrEncryptionFailed,
// ErrInvalidEnvelopeFormat and ErrDecryptionFailed. At a UI boundary, pass
// errors through SafeError so only ErrSensitiveData reaches the user.
package sensitive
