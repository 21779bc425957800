package validate

import (
	"regexp"
	"strings"
)

var (
	// Accepts Korean landline/mobile forms like 053-123-4567 and 010-1234-5678,
	// with or without separators.
	phoneRe = regexp.MustCompile(`^0\d{1,2}[- ]?\d{3,4}[- ]?\d{4}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Phone reports whether raw looks like a valid phone number.
func Phone(raw string) bool {
	return phoneRe.MatchString(strings.TrimSpace(raw))
}

// Email reports whether raw looks like a valid email address.
func Email(raw string) bool {
	return emailRe.MatchString(strings.TrimSpace(raw))
}

// NotBlank reports whether raw contains any non-whitespace characters.
func NotBlank(raw string) bool {
	return strings.TrimSpace(raw) != ""
}
