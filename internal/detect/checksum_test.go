package detect

import "testing"

func TestValidAadhaar(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"234567890124", true},
		{"2345 6789 0124", true},
		{"2345-6789-0124", true},
		{"234567890123", false}, // bad check digit
		{"123456789012", false}, // first digit below 2
		{"23456789012", false},  // too short
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidAadhaar(tt.in); got != tt.want {
			t.Errorf("ValidAadhaar(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidLuhn(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"4111111111111111", true},
		{"4111 1111 1111 1111", true},
		{"4111111111111112", false},
		{"411111111111", false}, // 12 digits, below minimum
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidLuhn(tt.in); got != tt.want {
			t.Errorf("ValidLuhn(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidPAN(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ABCPE1234F", true},
		{"ABCDE1234F", false}, // D is not a holder-type letter
		{"ABCPE1234", false},  // too short
	}
	for _, tt := range tests {
		if got := ValidPAN(tt.in); got != tt.want {
			t.Errorf("ValidPAN(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidIFSC(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"HDFC0001234", true},
		{"HDFC1001234", false}, // fifth char must be zero
		{"HDFC000123", false},  // too short
		{"HDFC0001_34", false}, // non-alphanumeric branch part
	}
	for _, tt := range tests {
		if got := ValidIFSC(tt.in); got != tt.want {
			t.Errorf("ValidIFSC(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
