package numeric

// IsInteger reports whether values are coerced to whole numbers.
func (f *Field) IsInteger() bool { return f.integer }

// SetInteger switches integer mode and revalidates the stored value.
func (f *Field) SetInteger(integer bool) *Field {
	f.integer = integer
	f.Revalidate()
	return f
}

// Step returns the step magnitude.
func (f *Field) Step() float64 { return f.step }

// SetStep sets the step magnitude. The stored value is not revalidated.
func (f *Field) SetStep(step float64) *Field {
	f.step = step
	return f
}

// Min returns the inclusive lower bound and whether it is set.
func (f *Field) Min() (float64, bool) { return f.min, f.hasMin }

// SetMin sets the inclusive lower bound and revalidates the stored value.
func (f *Field) SetMin(min float64) *Field {
	f.min, f.hasMin = min, true
	f.Revalidate()
	return f
}

// UnsetMin removes the lower bound. Rotation is disabled with it.
func (f *Field) UnsetMin() *Field {
	f.min, f.hasMin = 0, false
	f.rotate = false
	f.Revalidate()
	return f
}

// Max returns the exclusive upper bound and whether it is set.
func (f *Field) Max() (float64, bool) { return f.max, f.hasMax }

// SetMax sets the exclusive upper bound and revalidates the stored value.
func (f *Field) SetMax(max float64) *Field {
	f.max, f.hasMax = max, true
	f.Revalidate()
	return f
}

// UnsetMax removes the upper bound. Rotation is disabled with it.
func (f *Field) UnsetMax() *Field {
	f.max, f.hasMax = 0, false
	f.rotate = false
	f.Revalidate()
	return f
}

// IsRotate reports whether stepping wraps around at the bounds.
func (f *Field) IsRotate() bool { return f.rotate }

// SetRotate enables or disables wrap-around. Enabling requires both bounds;
// otherwise rotation stays off.
func (f *Field) SetRotate(rotate bool) *Field {
	f.rotate = rotate && f.hasMin && f.hasMax
	return f
}

// MaxTries returns the step search limit.
func (f *Field) MaxTries() int { return f.maxTries }

// SetMaxTries bounds the search done by StepUp and StepDown. Values below 1
// are ignored.
func (f *Field) SetMaxTries(n int) *Field {
	if n > 0 {
		f.maxTries = n
	}
	return f
}
