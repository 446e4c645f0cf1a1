// Package sanitizer provides helpers for coercing and cleaning raw form input
// before it is validated.
//
// Numeric helpers turn loosely typed input (strings typed into a form, JSON
// numbers, any Go integer or float kind) into float64 values:
//
//	sanitizer.ToFloat(" 3.7 ")  // 3.7
//	sanitizer.ToInteger("3.7")  // 3
//	sanitizer.ToInteger("-3.7") // -3
//	sanitizer.ToFloat("abc")    // NaN
//
// None of the helpers returns an error. Input that cannot be coerced becomes
// NaN, which validation rejects deterministically.
//
// Apply and Compose build transformation pipelines:
//
//	clean := sanitizer.Compose(
//	    func(v float64) float64 { return sanitizer.RoundToDecimalPlaces(v, 2) },
//	    math.Abs,
//	)
//
// The package is stateless and safe for concurrent use.
package sanitizer
