package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// FormatPhoneNumber strips formatting and ensures a country code prefix.
// Numbers without a recognizable code are assumed Swedish (+46).
func FormatPhoneNumber(phoneNumber string) string {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")

	if digits == "" {
		return ""
	}

	// "00" international prefix
	digits = strings.TrimPrefix(digits, "00")

	// Domestic format: drop the trunk zero, prepend Sweden
	if strings.HasPrefix(digits, "0") {
		digits = "46" + strings.TrimLeft(digits, "0")
	}

	return digits
}

// ValidatePhoneNumber accepts any plausible international number: 6 to 15
// digits after normalization.
func ValidatePhoneNumber(phoneNumber string) bool {
	cleaned := nonDigits.ReplaceAllString(phoneNumber, "")
	return len(cleaned) >= 6 && len(cleaned) <= 15
}

// NormalizePhoneNumber normalizes phone number for database storage
func NormalizePhoneNumber(phoneNumber string) string {
	return FormatPhoneNumber(phoneNumber)
}
