package sensitive

import (
	"strings"
	"unicode/utf8"
)

// Masking sentinels returned when too little of a value is present to show
// anything safely.
const (
	// MaskedValue replaces short values in MaskSensitiveData.
	MaskedValue = "***"

	// MaskedSSN replaces SSNs with fewer than four digits.
	MaskedSSN = "***-**-****"

	// MaskedAccount replaces account numbers with fewer than four digits.
	MaskedAccount = "****"

	// DefaultVisibleChars is the trailing character count MaskSensitiveData
	// callers normally show.
	DefaultVisibleChars = 4
)

// MaskSensitiveData keeps the last visibleChars characters of value and
// replaces the rest with '*'. Values no longer than visibleChars, including
// the empty string, become MaskedValue. Length is counted in runes.
func MaskSensitiveData(value string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 0
	}
	runes := []rune(value)
	if len(runes) == 0 || len(runes) <= visibleChars {
		return MaskedValue
	}
	hidden := len(runes) - visibleChars
	return strings.Repeat("*", hidden) + string(runes[hidden:])
}

// MaskSSN renders an SSN as ***-**-1234 from its last four digits, whatever
// punctuation the input carries. Fewer than four digits yields MaskedSSN.
func MaskSSN(ssn string) string {
	digits := extractDigits(ssn)
	if len(digits) < 4 {
		return MaskedSSN
	}
	return "***-**-" + digits[len(digits)-4:]
}

// MaskAccountNumber shows the last four digits of an account number and
// stars the rest. Fewer than four digits yields MaskedAccount.
//
// A number of exactly four digits is returned unmasked.
//
// TODO: confirm with product whether four-digit account numbers should be
// fully masked like short SSNs.
func MaskAccountNumber(accountNumber string) string {
	digits := extractDigits(accountNumber)
	switch {
	case len(digits) < 4:
		return MaskedAccount
	case len(digits) == 4:
		return digits
	default:
		return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
	}
}

// MaskType names a masking rule usable in a send.mask tag.
type MaskType string

const (
	MaskTypeSSN     MaskType = "ssn"     // 123-45-6789 -> ***-**-6789
	MaskTypeAccount MaskType = "account" // 1234567890 -> ******7890
	MaskTypeData    MaskType = "data"    // abcdef -> **cdef
	MaskTypeEmail   MaskType = "email"   // alice@example.com -> a***@example.com
	MaskTypePhone   MaskType = "phone"   // (555) 123-4567 -> (***) ***-4567
)

// Masker applies content-aware masking.
type Masker interface {
	// Mask returns the display form of value.
	Mask(value string) string
}

// MaskerFunc adapts a function to Masker.
type MaskerFunc func(value string) string

// Mask calls f(value).
func (f MaskerFunc) Mask(value string) string {
	return f(value)
}

// SSNMasker returns a Masker backed by MaskSSN.
func SSNMasker() Masker {
	return MaskerFunc(MaskSSN)
}

// AccountMasker returns a Masker backed by MaskAccountNumber.
func AccountMasker() Masker {
	return MaskerFunc(MaskAccountNumber)
}

// DataMasker returns a Masker that keeps the last visibleChars characters.
func DataMasker(visibleChars int) Masker {
	return MaskerFunc(func(value string) string {
		return MaskSensitiveData(value, visibleChars)
	})
}

type emailMasker struct{}

// EmailMasker returns a masker for email addresses.
// It keeps the first rune of the local part and the whole domain.
func EmailMasker() Masker {
	return emailMasker{}
}

func (emailMasker) Mask(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return strings.Repeat("*", len(value))
	}
	_, size := utf8.DecodeRuneInString(value)
	return value[:size] + "***" + value[at:]
}

type phoneMasker struct{}

// PhoneMasker returns a masker for phone numbers that keeps the last four
// digits and the parenthesized area-code style when the input uses it.
func PhoneMasker() Masker {
	return phoneMasker{}
}

func (phoneMasker) Mask(value string) string {
	digits := extractDigits(value)
	if len(digits) < 4 {
		return strings.Repeat("*", len(value))
	}

	last4 := digits[len(digits)-4:]
	switch {
	case strings.HasPrefix(value, "(") && len(digits) >= 10:
		return "(***) ***-" + last4
	case len(digits) >= 10:
		return "***-***-" + last4
	default:
		return "***-" + last4
	}
}

// extractDigits returns the ASCII digits of s in order.
func extractDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// builtinMaskers returns the default masker registry.
func builtinMaskers() map[MaskType]Masker {
	return map[MaskType]Masker{
		MaskTypeSSN:     SSNMasker(),
		MaskTypeAccount: AccountMasker(),
		MaskTypeData:    DataMasker(DefaultVisibleChars),
		MaskTypeEmail:   EmailMasker(),
		MaskTypePhone:   PhoneMasker(),
	}
}
