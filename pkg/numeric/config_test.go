package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/numeric"
)

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	t.Run("loaded from environment", func(t *testing.T) {
		var cfg numeric.Config
		err := config.Load(&cfg,
			config.WithPrefix("QTY_"),
			config.WithEnvironment(map[string]string{
				"QTY_INTEGER":   "true",
				"QTY_STEP":      "2",
				"QTY_MIN":       "0",
				"QTY_MAX":       "10",
				"QTY_MAX_TRIES": "20",
			}),
		)
		require.NoError(t, err)

		opts, err := cfg.Options()
		require.NoError(t, err)

		f := numeric.New("qty", opts...)
		assert.True(t, f.IsInteger())
		assert.Equal(t, 2.0, f.Step())
		assert.True(t, f.IsRotate())
		assert.Equal(t, 20, f.MaxTries())

		min, ok := f.Min()
		assert.True(t, ok)
		assert.Equal(t, 0.0, min)
		max, ok := f.Max()
		assert.True(t, ok)
		assert.Equal(t, 10.0, max)
	})

	t.Run("defaults leave field unbounded", func(t *testing.T) {
		var cfg numeric.Config
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))

		opts, err := cfg.Options()
		require.NoError(t, err)

		f := numeric.New("qty", opts...)
		assert.False(t, f.IsInteger())
		assert.Equal(t, 1.0, f.Step())
		assert.Equal(t, numeric.DefaultMaxTries, f.MaxTries())
		_, ok := f.Min()
		assert.False(t, ok)
		assert.False(t, f.IsRotate())
	})

	t.Run("rejects invalid bounds", func(t *testing.T) {
		for _, cfg := range []numeric.Config{
			{Min: "low"},
			{Max: "Inf"},
			{Max: "NaN"},
		} {
			_, err := cfg.Options()
			assert.ErrorIs(t, err, numeric.ErrInvalidBound)
		}
	})
}
