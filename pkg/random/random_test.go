package random_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/random"
)

func TestSource_NextInteger(t *testing.T) {
	t.Parallel()

	s := random.New(42)
	seen := make(map[int64]bool)
	for range 1000 {
		v := s.NextInteger(0, 4)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.LessOrEqual(t, v, int64(4))
		seen[v] = true
	}
	assert.Len(t, seen, 5, "every value in the inclusive range should appear")
}

func TestSource_NextIntegerDegenerate(t *testing.T) {
	t.Parallel()

	s := random.New(1)
	assert.Equal(t, int64(7), s.NextInteger(7, 7))
	assert.Equal(t, int64(7), s.NextInteger(7, 3))
}

func TestSource_NextIntegerWideRange(t *testing.T) {
	t.Parallel()

	s := random.New(1)
	var negative, positive bool
	for range 1000 {
		v := s.NextInteger(-6e18, 6e18)
		assert.GreaterOrEqual(t, v, int64(-6e18))
		assert.LessOrEqual(t, v, int64(6e18))
		if v < 0 {
			negative = true
		} else {
			positive = true
		}
	}
	assert.True(t, negative && positive, "samples should cover both halves of the range")

	assert.NotPanics(t, func() {
		for range 100 {
			s.NextInteger(math.MinInt64, math.MaxInt64)
		}
	})
}

func TestSource_NextFloat(t *testing.T) {
	t.Parallel()

	s := random.New(42)
	for range 1000 {
		v := s.NextFloat(-1.5, 2.5)
		assert.GreaterOrEqual(t, v, -1.5)
		assert.Less(t, v, 2.5)
	}
	assert.Equal(t, 3.0, s.NextFloat(3, 3))
}

func TestSource_Deterministic(t *testing.T) {
	t.Parallel()

	a, b := random.New(7), random.New(7)
	for range 20 {
		assert.Equal(t, a.NextInteger(0, 100), b.NextInteger(0, 100))
		assert.Equal(t, a.NextFloat(0, 1), b.NextFloat(0, 1))
	}
}

func TestSource_Concurrent(t *testing.T) {
	t.Parallel()

	s := random.NewTimeSeeded()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v := s.NextInteger(1, 6)
				assert.True(t, v >= 1 && v <= 6)
			}
		}()
	}
	wg.Wait()
}
