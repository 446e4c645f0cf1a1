package numeric

import "github.com/dmitrymomot/formkit/pkg/field"

// DefaultMaxTries bounds the search performed by StepUp and StepDown.
const DefaultMaxTries = 100

// DescribeFunc produces a human-readable description of a valid value.
// Returning false means there is nothing to describe.
type DescribeFunc func(value float64, f *Field) (string, bool)

// Option configures a Field at construction.
type Option func(*options)

type options struct {
	integer  bool
	step     float64
	min      *float64
	max      *float64
	rotate   bool
	maxTries int
	describe DescribeFunc
	field    []field.Option
}

func defaultOptions() *options {
	return &options{
		step:     1,
		rotate:   true,
		maxTries: DefaultMaxTries,
	}
}

// WithInteger coerces values to whole numbers.
func WithInteger(integer bool) Option {
	return func(o *options) { o.integer = integer }
}

// WithStep sets the step magnitude used by StepUp and StepDown.
func WithStep(step float64) Option {
	return func(o *options) { o.step = step }
}

// WithMin sets the inclusive lower bound.
func WithMin(min float64) Option {
	return func(o *options) { o.min = &min }
}

// WithMax sets the exclusive upper bound.
func WithMax(max float64) Option {
	return func(o *options) { o.max = &max }
}

// WithRotate enables wrap-around at the bounds. It only takes effect when
// both bounds are set. Default is true.
func WithRotate(rotate bool) Option {
	return func(o *options) { o.rotate = rotate }
}

// WithMaxTries bounds the step search. Values below 1 are ignored.
func WithMaxTries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTries = n
		}
	}
}

// WithDescribeValue sets the value description strategy.
func WithDescribeValue(fn DescribeFunc) Option {
	return func(o *options) { o.describe = fn }
}

// WithFieldOptions passes options through to the underlying field.Field.
func WithFieldOptions(opts ...field.Option) Option {
	return func(o *options) { o.field = append(o.field, opts...) }
}
