package field

// Source identifies where a value change came from.
type Source string

const (
	// SourceInit marks the value a field is constructed with.
	SourceInit    Source = "init"
	SourceProgram Source = "program"
	SourceView    Source = "view"
	SourceStep    Source = "step"
	SourceRandom  Source = "random"
)

// View is the display bound to a field.
type View interface {
	// UpdateValue redraws the field's value without changing the model.
	UpdateValue()
}

// ValidityView is implemented by views that also render validation state.
type ValidityView interface {
	View
	UpdateValidity(err error)
}

// Random is the sampling capability used to randomize values.
type Random interface {
	// NextInteger returns a uniform integer in [min, max], both inclusive.
	NextInteger(min, max int64) int64
	// NextFloat returns a uniform float in [min, max).
	NextFloat(min, max float64) float64
}

// Rule is a custom validation rule. It returns nil when value is acceptable.
type Rule func(value any) error

// Filter transforms a raw value before it is stored or validated.
type Filter = func(value any) any

// ChangeFunc is called after a committed value differs from the previous one.
type ChangeFunc func(f *Field, old, new any, source Source)

// Overrides lets a specialized field replace the generic filtering,
// validation and randomization. Nil members fall back to the generic ones.
type Overrides struct {
	Filter    func(value any) any
	Validate  func(value any) error
	Randomize func(r Random) (any, bool)
}
