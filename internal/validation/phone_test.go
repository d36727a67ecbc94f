package validation

import "testing"

func TestIsValidTanzanianPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{
			name:  "valid vodacom number",
			phone: "255712345678",
			valid: true,
		},
		{
			name:  "valid with spaces",
			phone: "255 712 345 678",
			valid: true,
		},
		{
			name:  "valid with plus prefix",
			phone: "+255712345678",
			valid: true,
		},
		{
			name:  "too short",
			phone: "25571234567",
			valid: false,
		},
		{
			name:  "too long",
			phone: "2557123456789",
			valid: false,
		},
		{
			name:  "wrong country code",
			phone: "254712345678",
			valid: false,
		},
		{
			name:  "local format without country code",
			phone: "0712345678",
			valid: false,
		},
		{
			name:  "empty string",
			phone: "",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidTanzanianPhone(tt.phone)
			if got != tt.valid {
				t.Fatalf("IsValidTanzanianPhone(%q) = %v, want %v", tt.phone, got, tt.valid)
			}
		})
	}
}

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "ordinary name", input: "Asha", valid: true},
		{name: "two characters", input: "Al", valid: true},
		{name: "single character", input: "A", valid: false},
		{name: "whitespace only", input: "   ", valid: false},
		{name: "padded short name", input: " B ", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.valid {
				t.Fatalf("IsValidName(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{
			name:  "canonical number",
			phone: "255712345678",
			want:  "255 712 345 678",
		},
		{
			name:  "plus prefix is dropped",
			phone: "+255712345678",
			want:  "255 712 345 678",
		},
		{
			name:  "unexpected length returned unchanged",
			phone: "0712345678",
			want:  "0712345678",
		},
		{
			name:  "empty",
			phone: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPhone(tt.phone); got != tt.want {
				t.Fatalf("FormatPhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "TZS 0"},
		{name: "below thousand", amount: 500, want: "TZS 500"},
		{name: "thousands", amount: 5000, want: "TZS 5,000"},
		{name: "exact group boundary", amount: 100000, want: "TZS 100,000"},
		{name: "millions", amount: 1234567, want: "TZS 1,234,567"},
		{name: "negative", amount: -5000, want: "-TZS 5,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount); got != tt.want {
				t.Fatalf("FormatCurrency(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
