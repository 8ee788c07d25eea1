package sensitive

// Override interfaces let a type handle one action itself instead of going
// through reflection. When a type implements one, the Processor calls it and
// skips capability validation for that action.

// Encryptable bypasses reflection for store.encrypt actions.
type Encryptable interface {
	// Encrypt transforms the fields that require encryption. The receiver
	// is a clone, so mutations are safe.
	Encrypt(encryptors map[EncryptAlgo]Encryptor) error
}

// Decryptable bypasses reflection for load.decrypt actions.
type Decryptable interface {
	// Decrypt transforms the fields that require decryption on freshly
	// unmarshaled data.
	Decrypt(encryptors map[EncryptAlgo]Encryptor) error
}

// Hashable bypasses reflection for receive.hash actions.
type Hashable interface {
	// Hash transforms the fields that require hashing on freshly
	// unmarshaled data.
	Hash(hashers map[HashAlgo]Hasher) error
}

// Maskable bypasses reflection for send.mask actions.
type Maskable interface {
	// Mask transforms the fields that require masking. The receiver is a
	// clone, so mutations are safe.
	Mask(maskers map[MaskType]Masker) error
}

// Redactable bypasses reflection for send.redact actions.
type Redactable interface {
	// Redact replaces redacted fields. The receiver is a clone.
	Redact() error
}
