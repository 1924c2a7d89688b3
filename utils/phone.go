package utils

import "strings"

// SanitizePhone strips everything except digits, the same way the booking
// form cleans input as the user types.
func SanitizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsTenDigitPhone reports whether the sanitized form of raw is exactly ten
// digits, the format the property accepts for Indian mobile numbers.
func IsTenDigitPhone(raw string) bool {
	return len(SanitizePhone(raw)) == 10
}
