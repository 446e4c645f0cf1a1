package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed matches any ValidationError or ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)

// Translation keys produced by the rules in this package.
const (
	KeyRequired          = "required"
	KeyNumberNotNumeric  = "numberNotNumeric"
	KeyNumberTooSmall    = "numberTooSmall"
	KeyNumberTooLarge    = "numberTooLarge"
	KeyNumberNotMultiple = "numberNotMultiple"
)
