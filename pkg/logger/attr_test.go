package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("step", slog.Float64("delta", 1), slog.Int("tries", 2))
	require.Equal(t, "step", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "delta", g[0].Key)
	assert.Equal(t, "tries", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestFieldAttrs(t *testing.T) {
	assert.Equal(t, slog.String("field", "qty"), logger.Field("qty"))
	assert.Equal(t, slog.String("source", "view"), logger.Source("view"))
	assert.Equal(t, slog.String("component", "numstep"), logger.Component("numstep"))
	assert.Equal(t, "value", logger.Value(3.5).Key)
	assert.Equal(t, 3.5, logger.Value(3.5).Value.Any())
	assert.Equal(t, slog.Float64("step", -1), logger.Step(-1))
	assert.Equal(t, slog.Int("tries", 100), logger.Tries(100))
}
