// Package validation contains input validation and display formatting helpers.
package validation

import (
	"strconv"
	"strings"
	"unicode"
)

// CleanPhone strips every non-digit character from the input.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, ch := range phone {
		if unicode.IsDigit(ch) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// IsValidTanzanianPhone reports whether the input is a Tanzanian mobile
// number in the local canonical format: country code 255 followed by nine
// digits. Non-digit characters are ignored.
func IsValidTanzanianPhone(phone string) bool {
	clean := CleanPhone(phone)
	return len(clean) == 12 && strings.HasPrefix(clean, "255")
}

// IsValidName reports whether the trimmed name is at least two characters long.
func IsValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// FormatPhone renders a canonical number as "255 XXX XXX XXX".
// Inputs of unexpected length are returned unchanged.
func FormatPhone(phone string) string {
	if phone == "" {
		return ""
	}

	clean := CleanPhone(phone)
	if len(clean) != 12 {
		return phone
	}

	return clean[0:3] + " " + clean[3:6] + " " + clean[6:9] + " " + clean[9:12]
}

// FormatCurrency renders a whole TZS amount with thousands separators,
// e.g. 50000 -> "TZS 50,000".
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("TZS ")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}

	return b.String()
}
