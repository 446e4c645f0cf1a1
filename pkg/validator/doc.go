// Package validator provides small, composable validation rules with
// translation-friendly error metadata.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates every rule and aggregates failures into
// ValidationErrors; First stops at the first failure, which suits checks
// that depend on earlier ones (a bound check only makes sense for a finite
// number):
//
//	err := validator.First(
//	    validator.Finite("qty", v),
//	    validator.MinNum("qty", v, 0),
//	    validator.LessThan("qty", v, 10),
//	)
//	switch validator.Key(err) {
//	case validator.KeyNumberTooSmall:
//	    // ...
//	}
//
// # Error Handling
//
// Both ValidationError and ValidationErrors implement error and match
// ErrValidationFailed with errors.Is. ExtractValidationErrors normalizes
// either form into a slice. TranslationKey is the stable, machine-readable
// identifier of a failure; Message is the default English text, which
// callers may replace with a localized rendering of the key.
//
// The package is stateless and safe for concurrent use.
package validator
