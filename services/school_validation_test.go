package services

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"office@stmarys.example.uk", true},
		{"a.b+c@x.co", true},
		{"", true}, // empty is valid, requiredness is checked separately
		{"missing-at.example.com", false},
		{"user@", false},
		{"user@domain", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePostcode(t *testing.T) {
	tests := []struct {
		postcode string
		want     bool
	}{
		{"LS1 4AB", true},
		{"SW1A 1AA", true},
		{"m1 1aa", true}, // case-insensitive
		{"CB11AA", true}, // space optional
		{"", true},
		{"12345", false},
		{"ABCDE", false},
	}

	for _, tt := range tests {
		if got := ValidatePostcode(tt.postcode); got != tt.want {
			t.Errorf("ValidatePostcode(%q) = %v, want %v", tt.postcode, got, tt.want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0113 496 0123", true},
		{"+44 20 7946 0958", true},
		{"(01223) 123456", false}, // must start with digit or +
		{"01223 123456", true},
		{"", true},
		{"12345", false}, // too short
		{"call me", false},
	}

	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
