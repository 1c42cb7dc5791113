package utils

import "strings"

const (
	nationalDigits   = 10
	maxCountryDigits = 5
)

// SanitizePhone strips every non-digit character from the given phone number.
// The result is what gets validated and stored.
func SanitizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether the sanitized number is a 10 digit national
// number, optionally prefixed with a country code of up to 5 digits. The
// client concatenates countryCode+number before submitting, so anything
// from 10 to 15 digits is structurally valid.
func ValidPhone(digits string) bool {
	n := len(digits)
	return n >= nationalDigits && n <= nationalDigits+maxCountryDigits
}
