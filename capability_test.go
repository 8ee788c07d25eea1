package sensitive

import "testing"

func TestEncryptAlgoValid(t *testing.T) {
	tests := []struct {
		algo EncryptAlgo
		want bool
	}{
		{EncryptAESGCM, true},
		{"aes", false},
		{"AESGCM", false},
		{" aesgcm", false},
		{"rsa", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			if got := tt.algo.Valid(); got != tt.want {
				t.Errorf("EncryptAlgo(%q).Valid() = %v, want %v", tt.algo, got, tt.want)
			}
		})
	}
}

func TestHashAlgoValid(t *testing.T) {
	for _, algo := range HashAlgos() {
		if !algo.Valid() {
			t.Errorf("HashAlgos() contains invalid %q", algo)
		}
	}
	for _, algo := range []HashAlgo{"sha512", "BCRYPT", "md5", ""} {
		if algo.Valid() {
			t.Errorf("HashAlgo(%q).Valid() = true", algo)
		}
	}
}

func TestMaskTypeValid(t *testing.T) {
	for _, mt := range MaskTypes() {
		if !mt.Valid() {
			t.Errorf("MaskTypes() contains invalid %q", mt)
		}
	}
	for _, mt := range []MaskType{"card", "SSN", "ssn ", ""} {
		if mt.Valid() {
			t.Errorf("MaskType(%q).Valid() = true", mt)
		}
	}
}
