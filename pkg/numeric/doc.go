// Package numeric implements a numeric form field with bounds, integer
// mode and spinner-style stepping.
//
// A Field embeds field.Field for storage, change notification and view
// binding, and replaces filtering, validation and randomization with
// numeric versions:
//
//	qty := numeric.New("quantity",
//	    numeric.WithInteger(true),
//	    numeric.WithMin(0),
//	    numeric.WithMax(10), // exclusive
//	    numeric.WithFieldOptions(field.WithValue(9)),
//	)
//
//	qty.StepUp()   // rotation is on by default: 9 wraps to 0
//	qty.StepDown() // 0 wraps to 9
//
// # Validation
//
// ValidateValue returns nil or a validator.ValidationError whose
// TranslationKey is one of validator.KeyNumberNotNumeric,
// validator.KeyNumberTooSmall or validator.KeyNumberTooLarge, followed by
// whatever the base field's rules report. The lower bound is inclusive, the
// upper bound exclusive.
//
// # Stepping
//
// StepValue adds the step repeatedly, skipping values rejected by any rule,
// until a valid value is found or maxTries attempts are used up. Failing to
// find one is reported with a false result, never an error; StepUp and
// StepDown then leave the field unchanged.
//
// When stepping down past the lower bound with rotation enabled, the value
// wraps to max+step. That lands one step inside the exclusive upper bound
// only when step is negative; a positive step passed to StepValue that
// somehow crosses below min keeps the same formula.
//
// A Field is meant for single-threaded UI event handling and is not safe for
// concurrent use.
package numeric
