package sanitizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// ToFloat coerces raw input into a float64.
// Strings are trimmed and parsed; unparseable or unsupported input yields NaN
// so callers can reject it during validation rather than handle an error here.
func ToFloat(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return math.NaN()
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		return parseFloat(string(v))
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	}
	return math.NaN()
}

// ToInteger coerces raw input into a whole number, truncating toward zero.
// NaN and infinities are mapped to NaN.
func ToInteger(raw any) float64 {
	v := ToFloat(raw)
	if !IsFinite(v) {
		return math.NaN()
	}
	return TruncateToInt(v)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// TruncateToInt truncates a floating-point number to an integer, removing the decimal part.
func TruncateToInt[T Float](value T) T {
	return T(math.Trunc(float64(value)))
}

// RoundToDecimalPlaces rounds a floating-point number to the specified number of decimal places.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
