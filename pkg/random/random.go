// Package random provides a seeded source of uniform samples for
// randomizing form field values.
package random

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Source draws uniform samples. It is safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Source with a fixed seed, producing a reproducible sequence.
func New(seed int64) *Source {
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// NewTimeSeeded returns a Source seeded from the current time.
func NewTimeSeeded() *Source {
	return New(time.Now().UnixNano())
}

// NextInteger returns a uniform integer in [min, max]. Both ends are
// inclusive; when max < min, min is returned. Any int64 range is supported.
func (s *Source) NextInteger(min, max int64) int64 {
	if max <= min {
		return min
	}
	// Width minus one; wraps correctly for ranges wider than MaxInt64.
	span := uint64(max) - uint64(min)

	s.mu.Lock()
	defer s.mu.Unlock()

	if span < math.MaxInt64 {
		return min + s.rnd.Int63n(int64(span)+1)
	}
	for {
		v := s.rnd.Uint64()
		if span == math.MaxUint64 || v <= span {
			return int64(uint64(min) + v)
		}
	}
}

// NextFloat returns a uniform float in [min, max). When max <= min, min is
// returned.
func (s *Source) NextFloat(min, max float64) float64 {
	if max <= min {
		return min
	}
	s.mu.Lock()
	f := s.rnd.Float64()
	s.mu.Unlock()

	v := min + f*(max-min)
	// Rounding can land exactly on max for wide ranges.
	if v >= max {
		return min
	}
	return v
}
