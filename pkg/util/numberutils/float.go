package numberutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiah = message.NewPrinter(language.Indonesian)

// ToFloatWithError parses a float64 after trimming spaces.
func ToFloatWithError(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ToFloatWithDefault parses a float64, returning defaultVal when it cannot.
func ToFloatWithDefault(s string, defaultVal float64) float64 {
	if f, err := ToFloatWithError(s); err == nil {
		return f
	}
	return defaultVal
}

// Round rounds x to the given number of decimal places, half away from zero.
func Round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}

// FormatRupiah prints v rounded to whole rupiah with dot thousands, e.g. "Rp 12.500".
func FormatRupiah(v float64) string {
	return rupiah.Sprintf("Rp %d", int64(math.Round(v)))
}

// ClampFloat bounds x to [min, max].
func ClampFloat(x, min, max float64) float64 {
	return math.Max(min, math.Min(max, x))
}

// ParsePrice reads prices published as "Rp 12.500", "12.500,50" or plain
// numbers. Thousands dots and the currency prefix are dropped and a decimal
// comma becomes a dot.
func ParsePrice(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("empty price")
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		cleaned := strings.TrimSpace(v)
		cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, "Rp"), "rp")
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Join(strings.Fields(cleaned), "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		if cleaned == "" {
			return 0, fmt.Errorf("empty price")
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q: %w", v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported price type %T", value)
	}
}
