package validator

import (
	"fmt"
	"math"
)

// RequiredValue validates that a value is present: not nil, not an empty
// string and not NaN.
func RequiredValue(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			switch v := value.(type) {
			case nil:
				return false
			case string:
				return v != ""
			case float64:
				return !math.IsNaN(v)
			case float32:
				return !math.IsNaN(float64(v))
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Finite validates that a float is a real number (neither NaN nor infinite).
func Finite(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsNaN(value) && !math.IsInf(value, 0)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a number",
			TranslationKey: KeyNumberNotNumeric,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: KeyNumberTooSmall,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// LessThan validates that a numeric value is strictly below the bound.
// Used for exclusive maximums.
func LessThan[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value < max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be less than %v", max),
			TranslationKey: KeyNumberTooLarge,
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// MultipleOf validates that value-base is a whole multiple of step.
// A zero step always passes.
func MultipleOf(field string, value, base, step float64) Rule {
	return Rule{
		Check: func() bool {
			if step == 0 {
				return true
			}
			q := (value - base) / step
			return math.Abs(q-math.Round(q)) < 1e-9
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a multiple of %v", step),
			TranslationKey: KeyNumberNotMultiple,
			TranslationValues: map[string]any{
				"field": field,
				"step":  step,
			},
		},
	}
}
