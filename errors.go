package sensitive

import (
	"errors"
	"fmt"
)

// Field protection errors. Use errors.Is to check for these.
var (
	// ErrMissingEncryptionKey indicates no secret is configured while running
	// in production. It is never recovered from by falling back to a default.
	ErrMissingEncryptionKey = errors.New("missing encryption key")

	// ErrEncryptionFailed wraps every failure of FieldCodec.Encrypt.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrInvalidEnvelopeFormat indicates a stored value is not a well-formed
	// iv:tag:ciphertext envelope.
	ErrInvalidEnvelopeFormat = errors.New("invalid envelope format")

	// ErrDecryptionFailed indicates the tag did not verify (wrong key or
	// tampered data) or the cipher could not be built.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKey indicates key material of the wrong size.
	ErrInvalidKey = errors.New("invalid key")

	// ErrSensitiveData is the only error surfaced to end users. See SafeError.
	ErrSensitiveData = errors.New("unable to process sensitive data")
)

// Processor errors.
var (
	// ErrMissingEncryptor indicates a required encryptor was not registered.
	ErrMissingEncryptor = errors.New("missing encryptor")

	// ErrMissingHasher indicates a required hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingMasker indicates a required masker was not registered.
	ErrMissingMasker = errors.New("missing masker")

	// ErrInvalidTag indicates a struct tag has an invalid value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrEncrypt indicates encryption of a field failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates decryption of a field failed.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrHash indicates hashing of a field failed.
	ErrHash = errors.New("hash failed")
)

// ConfigError is a processor configuration error: an unknown tag value or a
// capability that was never registered.
type ConfigError struct {
	Err       error  // ErrMissingEncryptor, ErrMissingHasher, ErrMissingMasker, ErrInvalidTag
	Field     string // field path that triggered the error
	Algorithm string // tag value that was missing or invalid
}

func (e *ConfigError) Error() string {
	switch {
	case e.Field != "" && e.Algorithm != "":
		return fmt.Sprintf("%s for %q (field %s)", e.Err.Error(), e.Algorithm, e.Field)
	case e.Algorithm != "":
		return fmt.Sprintf("%s for %q", e.Err.Error(), e.Algorithm)
	case e.Field != "":
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError reports which field failed and how. It unwraps to both the
// operation sentinel (ErrEncrypt, ErrDecrypt, ErrHash) and the cause, so
// errors.Is(err, ErrInvalidEnvelopeFormat) still works through a Processor.
type TransformError struct {
	Err       error  // operation sentinel
	Field     string // field path, with [i] or [key] for collections
	Operation string // encrypt, decrypt, hash
	Cause     error  // error from the Encryptor or Hasher
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *TransformError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // ErrMarshal or ErrUnmarshal
	Cause error // error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// SafeError converts any field protection error into ErrSensitiveData for
// display at a UI boundary. The original error should be logged, never shown.
// A nil error stays nil.
func SafeError(err error) error {
	if err == nil {
		return nil
	}
	return ErrSensitiveData
}

// IsSensitiveDataError reports whether err came from protecting or revealing
// a sensitive field, as opposed to a configuration or codec problem.
func IsSensitiveDataError(err error) bool {
	for _, target := range []error{
		ErrMissingEncryptionKey,
		ErrEncryptionFailed,
		ErrInvalidEnvelopeFormat,
		ErrDecryptionFailed,
		ErrEncrypt,
		ErrDecrypt,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func newConfigError(sentinel error, algorithm, field string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Field:     field,
	}
}

func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
