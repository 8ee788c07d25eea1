package sensitive

// EncryptAlgo names an encryptor usable in store.encrypt and load.decrypt
// tags: `store.encrypt:"aesgcm"`.
type EncryptAlgo string

// EncryptAESGCM is FieldCodec: AES-256-GCM with hex iv:tag:ciphertext
// envelopes.
const EncryptAESGCM EncryptAlgo = "aesgcm"

// Valid reports whether a names a known encryptor.
func (a EncryptAlgo) Valid() bool {
	return a == EncryptAESGCM
}

// HashAlgo names a hasher usable in receive.hash tags.
type HashAlgo string

const (
	// HashArgon2 uses Argon2id (salted, slow).
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt uses bcrypt (salted, slow).
	HashBcrypt HashAlgo = "bcrypt"

	// HashSHA256 uses SHA-256 (deterministic, fast). Not for passwords.
	HashSHA256 HashAlgo = "sha256"
)

// HashAlgos lists the hashers accepted in receive.hash tags.
func HashAlgos() []HashAlgo {
	return []HashAlgo{HashArgon2, HashBcrypt, HashSHA256}
}

// Valid reports whether a names a known hasher.
func (a HashAlgo) Valid() bool {
	switch a {
	case HashArgon2, HashBcrypt, HashSHA256:
		return true
	}
	return false
}

// MaskTypes lists the mask types accepted in send.mask tags.
func MaskTypes() []MaskType {
	return []MaskType{MaskTypeSSN, MaskTypeAccount, MaskTypeData, MaskTypeEmail, MaskTypePhone}
}

// Valid reports whether m names a known masking rule.
func (m MaskType) Valid() bool {
	switch m {
	case MaskTypeSSN, MaskTypeAccount, MaskTypeData, MaskTypeEmail, MaskTypePhone:
		return true
	}
	return false
}
