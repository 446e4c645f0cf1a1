package numeric

import (
	"math"

	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Bounds for integer sampling: the int64 extremes that survive a round trip
// through float64.
var (
	minSampleInt = float64(math.MinInt64)
	maxSampleInt = math.Nextafter(float64(math.MaxInt64), 0)
)

// Field is a form field holding a number. It validates the value against
// optional bounds and steps it up or down, optionally wrapping at the bounds.
//
// The lower bound is inclusive and the upper bound is exclusive. Storage,
// change notification and view binding come from the embedded field.Field.
type Field struct {
	*field.Field

	integer  bool
	step     float64
	min      float64
	max      float64
	hasMin   bool
	hasMax   bool
	rotate   bool
	maxTries int
	describe DescribeFunc
}

// New creates a numeric field. Options are read once; use the setters to
// change configuration afterwards.
func New(name string, opts ...Option) *Field {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f := &Field{
		integer:  o.integer,
		step:     o.step,
		maxTries: o.maxTries,
		describe: o.describe,
	}
	if o.min != nil {
		f.min, f.hasMin = *o.min, true
	}
	if o.max != nil {
		f.max, f.hasMax = *o.max, true
	}
	f.rotate = o.rotate && f.hasMin && f.hasMax

	fieldOpts := append(o.field, field.WithOverrides(func(base *field.Field) field.Overrides {
		f.Field = base
		return field.Overrides{
			Filter:   func(v any) any { return f.FilterValue(v) },
			Validate: f.ValidateValue,
			Randomize: func(r field.Random) (any, bool) {
				return f.RandomizeValue(r)
			},
		}
	}))
	f.Field = field.New(name, fieldOpts...)
	return f
}

// Value returns the stored number, or NaN when it is not numeric.
func (f *Field) Value() float64 {
	if v, ok := f.Field.Value().(float64); ok {
		return v
	}
	return math.NaN()
}

// SetValue commits value through the base field.
func (f *Field) SetValue(value any, source field.Source) *Field {
	f.Field.SetValue(value, source)
	return f
}

// StepUp moves the value one step up. Nothing changes if no valid value
// is reachable.
func (f *Field) StepUp() *Field {
	return f.stepBy(f.step)
}

// StepDown moves the value one step down. Nothing changes if no valid value
// is reachable.
func (f *Field) StepDown() *Field {
	return f.stepBy(-f.step)
}

func (f *Field) stepBy(step float64) *Field {
	if v, ok := f.StepValue(step, f.maxTries); ok {
		f.SetValue(v, field.SourceStep)
	}
	return f
}

// StepValue searches for the next valid value reachable by repeatedly adding
// step to the current value. Invalid intermediate values are skipped.
//
// Without rotation the search stops at a bound it is moving toward. With
// rotation a value past max wraps to min and a value below min wraps to
// max+step, one step inside the exclusive upper bound when stepping down.
//
// It returns false when no valid value is found within maxTries attempts.
func (f *Field) StepValue(step float64, maxTries int) (float64, bool) {
	v := f.Value()
	tries := 0

	for ; tries < maxTries; tries++ {
		if !f.rotate {
			if step < 0 && f.hasMin && v == f.min {
				break
			}
			if step > 0 && f.hasMax && v == f.max {
				break
			}
		}

		v += step

		if f.rotate && v > f.max {
			v = f.min
		} else if f.rotate && v < f.min {
			// Assumes step is negative here, as when stepping down.
			v = f.max + step
		}

		if f.ValidateValue(v) == nil {
			return v, true
		}
	}

	f.Logger().Debug("no valid step value",
		logger.Field(f.Name()),
		logger.Group("search", logger.Step(step), logger.Tries(tries)),
	)
	return 0, false
}

// FilterValue coerces raw input to a number: truncated toward zero in
// integer mode, parsed as a float otherwise. Unparseable input becomes NaN.
// The base field's filters run afterwards.
func (f *Field) FilterValue(raw any) float64 {
	var v float64
	if f.integer {
		v = sanitizer.ToInteger(raw)
	} else {
		v = sanitizer.ToFloat(raw)
	}
	return sanitizer.ToFloat(f.Field.FilterValue(v))
}

// ValidateValue filters raw and checks it is a finite number within the
// bounds before running the base field's validation. It returns nil when
// the value is valid.
func (f *Field) ValidateValue(raw any) error {
	v := f.FilterValue(raw)
	name := f.Name()

	rules := []validator.Rule{validator.Finite(name, v)}
	if f.hasMin {
		rules = append(rules, validator.MinNum(name, v, f.min))
	}
	if f.hasMax {
		rules = append(rules, validator.LessThan(name, v, f.max))
	}
	if err := validator.First(rules...); err != nil {
		return f.Localize(err)
	}

	return f.Field.ValidateValue(v)
}

// RandomizeValue returns a random value for the field. Values configured on
// the base field take precedence; otherwise a uniform sample in [min, max)
// is drawn, which requires both bounds.
func (f *Field) RandomizeValue(r field.Random) (float64, bool) {
	if r == nil {
		return 0, false
	}
	if v, ok := f.Field.RandomizeValue(r); ok {
		return f.FilterValue(v), true
	}
	if !f.hasMin || !f.hasMax {
		return 0, false
	}

	if f.integer {
		// Samples are drawn as int64, so the range is clamped to what
		// int64 can hold.
		lo := math.Max(math.Ceil(f.min), minSampleInt)
		hi := math.Ceil(f.max) - 1
		if hi >= f.max {
			// Past 2^53 subtracting one is lost to rounding.
			hi = math.Nextafter(f.max, math.Inf(-1))
		}
		hi = math.Min(hi, maxSampleInt)
		if !(lo <= hi) {
			return 0, false
		}
		return float64(r.NextInteger(int64(lo), int64(hi))), true
	}

	if f.max <= f.min {
		return 0, false
	}
	return r.NextFloat(f.min, f.max), true
}

// ValueDescription describes the current value. It returns false when the
// value is invalid or no description strategy is configured.
func (f *Field) ValueDescription() (string, bool) {
	if f.describe == nil || !f.IsValid() {
		return "", false
	}
	return f.describe(f.Value(), f)
}

// SetNeedsValueDescriptionUpdate asks the attached view to redraw, for when
// the description depends on state outside this field.
func (f *Field) SetNeedsValueDescriptionUpdate() {
	if f.HasView() {
		f.View().UpdateValue()
	}
}

// ViewValueDidChange forwards an edit made in v to the field.
func (f *Field) ViewValueDidChange(v field.View, value any) {
	f.SetValue(value, field.SourceView)
}
