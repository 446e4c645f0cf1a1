package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	t.Run("prefixes field name", func(t *testing.T) {
		err := validator.ValidationError{Field: "qty", Message: "must be a number"}
		assert.Equal(t, "qty: must be a number", err.Error())
	})

	t.Run("returns bare message without field", func(t *testing.T) {
		err := validator.ValidationError{Message: "must be a number"}
		assert.Equal(t, "must be a number", err.Error())
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		var err error = validator.ValidationError{Field: "qty", Message: "bad"}
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "min", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "max", Message: "too small"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "min: is required")
		assert.Contains(t, msg, "max: too small")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "qty", Message: "first", TranslationKey: validator.KeyNumberTooSmall},
		{Field: "qty", Message: "second", TranslationKey: validator.KeyNumberNotMultiple},
		{Field: "price", Message: "third", TranslationKey: validator.KeyRequired},
	}

	assert.True(t, errs.Has("qty"))
	assert.False(t, errs.Has("missing"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("qty"))
	assert.Equal(t, []string{
		validator.KeyNumberTooSmall,
		validator.KeyNumberNotMultiple,
		validator.KeyRequired,
	}, errs.Keys())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("qty", 5, 1),
			validator.LessThan("qty", 5, 10),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("qty", -1, 0),
			validator.MultipleOf("qty", -1, 0, 2),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, validator.KeyNumberTooSmall, errs[0].TranslationKey)
		assert.Equal(t, validator.KeyNumberNotMultiple, errs[1].TranslationKey)
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.First(validator.Finite("qty", 1)))
	})

	t.Run("stops at first failure", func(t *testing.T) {
		evaluated := false
		err := validator.First(
			validator.MinNum("qty", 0, 1),
			validator.Rule{Check: func() bool {
				evaluated = true
				return true
			}},
		)
		require.Error(t, err)
		assert.False(t, evaluated)

		var verr validator.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, validator.KeyNumberTooSmall, verr.TranslationKey)
	})
}

func TestKey(t *testing.T) {
	t.Parallel()

	single := validator.ValidationError{TranslationKey: validator.KeyNumberTooLarge}
	many := validator.ValidationErrors{{TranslationKey: validator.KeyRequired}}

	assert.Equal(t, validator.KeyNumberTooLarge, validator.Key(single))
	assert.Equal(t, validator.KeyRequired, validator.Key(many))
	assert.Equal(t, validator.KeyNumberTooLarge, validator.Key(fmt.Errorf("wrapped: %w", single)))
	assert.Empty(t, validator.Key(errors.New("plain")))
	assert.Empty(t, validator.Key(nil))
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidationError(validator.ValidationError{}))
	assert.True(t, validator.IsValidationError(validator.ValidationErrors{{}}))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
}
