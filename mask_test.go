package sensitive

import (
	"testing"
	"unicode/utf8"
)

func TestMaskSSN(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123-45-6789", "***-**-6789"},
		{"123456789", "***-**-6789"},
		{"123 45 6789", "***-**-6789"},
		{"12", "***-**-****"},
		{"", "***-**-****"},
		{"abc-de-fghi", "***-**-****"},
		{"1234", "***-**-1234"},
		{"١٢٣-٤٥-٦٧٨٩", "***-**-****"}, // only ASCII digits count
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MaskSSN(tt.input); got != tt.want {
				t.Errorf("MaskSSN(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskAccountNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234567890", "******7890"},
		{"1234-5678-90", "******7890"},
		{"12", "****"},
		{"", "****"},
		{"1234", "1234"},
		{"12345", "*2345"},
		{"ACCT 000123456789", "********6789"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MaskAccountNumber(tt.input); got != tt.want {
				t.Errorf("MaskAccountNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskSensitiveData(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		visible int
		want    string
	}{
		{"default", "abcdef", 4, "**cdef"},
		{"all hidden", "abcdef", 0, "******"},
		{"equal length", "abcd", 4, "***"},
		{"shorter", "ab", 4, "***"},
		{"empty", "", 4, "***"},
		{"empty zero visible", "", 0, "***"},
		{"negative visible", "abc", -1, "***"},
		{"runes", "José Núñez", 3, "*******ñez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskSensitiveData(tt.input, tt.visible); got != tt.want {
				t.Errorf("MaskSensitiveData(%q, %d) = %q, want %q", tt.input, tt.visible, got, tt.want)
			}
		})
	}
}

func TestEmailMasker(t *testing.T) {
	m := EmailMasker()

	tests := []struct {
		input string
		want  string
	}{
		{"alice@example.com", "a***@example.com"},
		{"b@lender.test", "b***@lender.test"},
		{"first.last+loan@bank.co", "f***@bank.co"},
		{"no-at-sign", "**********"},
		{"@example.com", "************"},
		{"élise@example.com", "é***@example.com"},
		{"李@bank.cn", "李***@bank.cn"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := m.Mask(tt.input)
			if got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Mask(%q) = %q is not valid UTF-8", tt.input, got)
			}
		})
	}
}

func TestPhoneMasker(t *testing.T) {
	m := PhoneMasker()

	tests := []struct {
		input string
		want  string
	}{
		{"(555) 123-4567", "(***) ***-4567"},
		{"555-123-4567", "***-***-4567"},
		{"+1 555 123 4567", "***-***-4567"},
		{"123-4567", "***-4567"},
		{"12", "**"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := m.Mask(tt.input); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskerConstructors(t *testing.T) {
	if got := SSNMasker().Mask("123-45-6789"); got != "***-**-6789" {
		t.Errorf("SSNMasker() = %q", got)
	}
	if got := AccountMasker().Mask("1234567890"); got != "******7890" {
		t.Errorf("AccountMasker() = %q", got)
	}
	if got := DataMasker(2).Mask("abcdef"); got != "****ef" {
		t.Errorf("DataMasker(2) = %q", got)
	}
}

func TestMaskerFunc(t *testing.T) {
	var m Masker = MaskerFunc(func(string) string { return "hidden" })
	if got := m.Mask("anything"); got != "hidden" {
		t.Errorf("Mask() = %q, want %q", got, "hidden")
	}
}

func TestBuiltinMaskers(t *testing.T) {
	maskers := builtinMaskers()

	for _, mt := range MaskTypes() {
		if _, ok := maskers[mt]; !ok {
			t.Errorf("builtinMaskers() missing %q", mt)
		}
	}
	if len(maskers) != len(MaskTypes()) {
		t.Errorf("builtinMaskers() has %d entries, want %d", len(maskers), len(MaskTypes()))
	}
}
