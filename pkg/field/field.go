package field

import (
	"log/slog"
	"math"
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field owns a form value: it stores it, validates it, notifies listeners
// when it changes and keeps an attached view in sync.
//
// Field is not safe for concurrent use.
type Field struct {
	name      string
	raw       any
	value     any
	err       error
	required  bool
	rules     []Rule
	filters   []Filter
	choices   []any
	view      View
	listeners []ChangeFunc
	catalog   *messages.Catalog
	logger    *slog.Logger
	overrides Overrides
	extend    func(base *Field) Overrides
}

// New creates a field named name.
func New(name string, opts ...Option) *Field {
	f := &Field{
		name:    name,
		catalog: messages.Default(),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.extend != nil {
		f.overrides = f.extend(f)
	}
	f.reset()
	return f
}

// Override installs specialized behavior and re-derives the stored value
// from the last raw input.
func (f *Field) Override(o Overrides) {
	f.overrides = o
	f.reset()
}

func (f *Field) reset() {
	f.value = f.filter(f.raw)
	f.err = f.Validate(f.value)

	f.logger.Debug("value initialized",
		logger.Field(f.name),
		logger.Value(f.value),
		logger.Source(string(SourceInit)),
		logger.Error(f.err),
	)
}

// Name returns the field name used in messages.
func (f *Field) Name() string { return f.name }

// Value returns the filtered, stored value.
func (f *Field) Value() any { return f.value }

// Raw returns the last value passed in before filtering.
func (f *Field) Raw() any { return f.raw }

// Catalog returns the catalog used to render validation messages.
func (f *Field) Catalog() *messages.Catalog { return f.catalog }

// Logger returns the field logger.
func (f *Field) Logger() *slog.Logger { return f.logger }

// SetValue filters and stores value, revalidates it and notifies listeners
// if it changed. The view is refreshed unless the edit came from the view.
func (f *Field) SetValue(value any, source Source) *Field {
	old := f.value
	f.raw = value
	f.value = f.filter(value)
	f.err = f.Validate(f.value)

	f.logger.Debug("value set",
		logger.Field(f.name),
		logger.Value(f.value),
		logger.Source(string(source)),
		logger.Error(f.err),
	)

	if f.view != nil && source != SourceView {
		f.view.UpdateValue()
	}
	f.notifyValidity()

	if !sameValue(old, f.value) {
		for _, fn := range f.listeners {
			fn(f, old, f.value, source)
		}
	}
	return f
}

// FilterValue applies the generic filters.
func (f *Field) FilterValue(value any) any {
	return sanitizer.Apply(value, f.filters...)
}

func (f *Field) filter(value any) any {
	if f.overrides.Filter != nil {
		return f.overrides.Filter(value)
	}
	return f.FilterValue(value)
}

// ValidateValue runs the generic validation: required-ness, then custom
// rules in order. The first failure is returned with a localized message.
func (f *Field) ValidateValue(value any) error {
	if f.required {
		if err := validator.First(validator.RequiredValue(f.name, value)); err != nil {
			return f.Localize(err)
		}
	}
	for _, rule := range f.rules {
		if err := rule(value); err != nil {
			return f.Localize(err)
		}
	}
	return nil
}

// Validate runs the full validation, including any specialized checks.
func (f *Field) Validate(value any) error {
	if f.overrides.Validate != nil {
		return f.overrides.Validate(value)
	}
	return f.ValidateValue(value)
}

// Revalidate validates the stored value again, for use after a change to
// constraints. The result is kept for Err and pushed to a ValidityView.
func (f *Field) Revalidate() error {
	f.err = f.Validate(f.value)
	if f.err != nil {
		f.logger.Debug("stored value no longer valid", logger.Field(f.name), logger.Error(f.err))
	}
	f.notifyValidity()
	return f.err
}

// Err returns the validation result of the last commit or revalidation.
func (f *Field) Err() error { return f.err }

// IsValid validates the stored value.
func (f *Field) IsValid() bool {
	return f.Validate(f.value) == nil
}

// Localize fills in the field name and renders the catalog message for
// validation errors. Other errors are returned unchanged.
func (f *Field) Localize(err error) error {
	switch e := err.(type) {
	case validator.ValidationError:
		return f.localizeOne(e)
	case validator.ValidationErrors:
		out := make(validator.ValidationErrors, len(e))
		for i, ve := range e {
			out[i] = f.localizeOne(ve)
		}
		return out
	}
	return err
}

func (f *Field) localizeOne(e validator.ValidationError) validator.ValidationError {
	if e.Field == "" {
		e.Field = f.name
	}
	if e.TranslationKey != "" && f.catalog.Has(e.TranslationKey) {
		e.Message = f.catalog.Text(e.TranslationKey, e.TranslationValues)
	}
	return e
}

// RandomizeValue picks one of the configured random choices.
func (f *Field) RandomizeValue(r Random) (any, bool) {
	if r == nil || len(f.choices) == 0 {
		return nil, false
	}
	idx := r.NextInteger(0, int64(len(f.choices)-1))
	if idx < 0 || idx >= int64(len(f.choices)) {
		return nil, false
	}
	return f.choices[idx], true
}

// Randomize commits a randomized value. It reports whether one was found.
func (f *Field) Randomize(r Random) bool {
	var (
		v  any
		ok bool
	)
	if f.overrides.Randomize != nil {
		v, ok = f.overrides.Randomize(r)
	} else {
		v, ok = f.RandomizeValue(r)
	}
	if !ok {
		return false
	}
	f.SetValue(v, SourceRandom)
	return true
}

// IsRequired reports whether an empty value is rejected.
func (f *Field) IsRequired() bool { return f.required }

// SetRequired changes required-ness and revalidates.
func (f *Field) SetRequired(required bool) *Field {
	f.required = required
	f.Revalidate()
	return f
}

// AddRule appends a custom rule and revalidates.
func (f *Field) AddRule(rule Rule) *Field {
	if rule != nil {
		f.rules = append(f.rules, rule)
		f.Revalidate()
	}
	return f
}

// HasView reports whether a view is attached.
func (f *Field) HasView() bool { return f.view != nil }

// View returns the attached view, or nil.
func (f *Field) View() View { return f.view }

// AttachView binds v and asks it to render the current value.
func (f *Field) AttachView(v View) *Field {
	f.view = v
	if v != nil {
		v.UpdateValue()
		f.notifyValidity()
	}
	return f
}

// DetachView unbinds the view. The value is left unchanged.
func (f *Field) DetachView() *Field {
	f.view = nil
	return f
}

// OnChange registers a change listener.
func (f *Field) OnChange(fn ChangeFunc) *Field {
	if fn != nil {
		f.listeners = append(f.listeners, fn)
	}
	return f
}

func (f *Field) notifyValidity() {
	if vv, ok := f.view.(ValidityView); ok {
		vv.UpdateValidity(f.err)
	}
}

// sameValue compares stored values, treating two NaNs as equal.
func sameValue(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
	}
	return reflect.DeepEqual(a, b)
}
