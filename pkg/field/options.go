package field

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

// Option configures a Field.
type Option func(*Field)

// WithValue sets the initial value. It is filtered and validated like any
// other value but does not notify change listeners.
func WithValue(value any) Option {
	return func(f *Field) {
		f.raw = value
	}
}

// WithRequired marks the field as required.
func WithRequired(required bool) Option {
	return func(f *Field) {
		f.required = required
	}
}

// WithRules appends custom validation rules, evaluated in order.
func WithRules(rules ...Rule) Option {
	return func(f *Field) {
		for _, r := range rules {
			if r != nil {
				f.rules = append(f.rules, r)
			}
		}
	}
}

// WithFilters appends generic filters, applied in order.
func WithFilters(filters ...Filter) Option {
	return func(f *Field) {
		f.filters = append(f.filters, filters...)
	}
}

// WithRandomChoices sets the values RandomizeValue picks from.
func WithRandomChoices(values ...any) Option {
	return func(f *Field) {
		f.choices = append(f.choices, values...)
	}
}

// WithView attaches a view.
func WithView(v View) Option {
	return func(f *Field) {
		f.view = v
	}
}

// WithOnChange registers a change listener.
func WithOnChange(fn ChangeFunc) Option {
	return func(f *Field) {
		if fn != nil {
			f.listeners = append(f.listeners, fn)
		}
	}
}

// WithCatalog sets the catalog used to render validation messages.
func WithCatalog(c *messages.Catalog) Option {
	return func(f *Field) {
		if c != nil {
			f.catalog = c
		}
	}
}

// WithOverrides installs specialized behavior before the initial value is
// filtered and validated. build receives the field being constructed.
func WithOverrides(build func(base *Field) Overrides) Option {
	return func(f *Field) {
		f.extend = build
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}
