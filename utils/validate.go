package utils

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	statePattern = regexp.MustCompile(`^[A-Z]{2}$`)
)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateZip accepts 5-digit ZIP codes with an optional +4 extension.
func ValidateZip(zip string) bool {
	return zipPattern.MatchString(zip)
}

func ValidateStateCode(state string) bool {
	return statePattern.MatchString(state)
}

// ValidatePhone accepts US numbers with common separators, requiring 10 digits.
func ValidatePhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '+':
		default:
			return false
		}
	}
	return digits == 10 || digits == 11
}

// IsImageMIME reports whether the given content type is an accepted photo type.
func IsImageMIME(mime string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mime)), "image/")
}
