package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
// TranslationKey is the stable, machine-readable identifier of the failure.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error formats the error as "field: message", or the message alone.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidationFailed, so a single failure
// can be detected with errors.Is without inspecting its type.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

// Error joins the messages of all errors.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends err.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field has at least one error.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Keys returns the translation keys in order.
func (ve ValidationErrors) Keys() []string {
	keys := make([]string, 0, len(ve))
	for _, err := range ve {
		keys = append(keys, err.TranslationKey)
	}
	return keys
}

// IsEmpty reports whether no errors were recorded.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// First executes rules in order and stops at the first failing one,
// returning its ValidationError. Later rules are never evaluated, which
// lets a rule rely on the ones before it having passed.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// ExtractValidationErrors extracts ValidationErrors from an error.
// A single ValidationError is returned as a one-element collection.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

// IsValidationError reports whether err is or wraps a validation failure.
func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

// Key returns the translation key of the first validation failure wrapped
// in err, or an empty string when err carries no validation failure.
func Key(err error) string {
	if errs := ExtractValidationErrors(err); len(errs) > 0 {
		return errs[0].TranslationKey
	}
	return ""
}
