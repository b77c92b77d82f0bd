package numberutils

import (
	"strconv"
)

// ToInt64WithError converts the given string to an int64 and reports conversion errors.
func ToInt64WithError(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ToInt64WithDefault converts the given string to an int64.
// If the string cannot be converted, it returns the provided default value.
func ToInt64WithDefault(s string, defaultVal int64) int64 {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return defaultVal
}
