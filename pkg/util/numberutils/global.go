package numberutils

import (
	"strings"
	"unicode"
)

// IsDigits checks if the given string is non-empty and contains only digits (0-9).
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsDottedCode checks codes such as "33.07.09.1020": digit groups joined by dots.
func IsDottedCode(str string, groups int) bool {
	parts := strings.Split(str, ".")
	if len(parts) != groups {
		return false
	}
	for _, part := range parts {
		if !IsDigits(part) {
			return false
		}
	}
	return true
}
