package validator

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	// Same pattern the persistence tier applies, kept loose on purpose.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// +1234567890, (123) 456-7890, 123.456.7890
	phoneCharsRegex = regexp.MustCompile(`^[\d\s\-+().]+$`)
)

// MinPhoneDigits is the digit count below which a phone number is rejected.
const MinPhoneDigits = 7

// IsValidURL accepts absolute http and https URLs with a host.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if !strings.EqualFold(u.Scheme, "http") && !strings.EqualFold(u.Scheme, "https") {
		return false
	}
	return u.Host != ""
}

// IsValidHexColor accepts #RRGGBB only, in either case. The #RGB shorthand is
// rejected.
func IsValidHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// HasPhoneChars reports whether s contains only digits, spaces and common
// phone punctuation.
func HasPhoneChars(s string) bool {
	return phoneCharsRegex.MatchString(s)
}

// IsValidPhone requires phone characters and at least MinPhoneDigits digits.
func IsValidPhone(s string) bool {
	if !HasPhoneChars(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}
