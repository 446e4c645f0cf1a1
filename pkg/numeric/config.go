package numeric

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// ErrInvalidBound is returned when a configured bound is not a finite number.
var ErrInvalidBound = errors.New("invalid numeric bound")

// Config describes a numeric field in environment variables.
// Bounds are strings so that an empty value means unbounded.
type Config struct {
	Integer  bool    `env:"INTEGER" envDefault:"false"`
	Step     float64 `env:"STEP" envDefault:"1"`
	Min      string  `env:"MIN"`
	Max      string  `env:"MAX"`
	Rotate   bool    `env:"ROTATE" envDefault:"true"`
	MaxTries int     `env:"MAX_TRIES" envDefault:"100"`
}

// Options converts the configuration into construction options.
func (c Config) Options() ([]Option, error) {
	opts := []Option{
		WithInteger(c.Integer),
		WithStep(c.Step),
		WithRotate(c.Rotate),
		WithMaxTries(c.MaxTries),
	}

	if min, ok, err := parseBound("min", c.Min); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, WithMin(min))
	}

	if max, ok, err := parseBound("max", c.Max); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, WithMax(max))
	}

	return opts, nil
}

func parseBound(name, s string) (float64, bool, error) {
	if strings.TrimSpace(s) == "" {
		return 0, false, nil
	}
	v := sanitizer.ToFloat(s)
	if !sanitizer.IsFinite(v) {
		return 0, false, errors.Join(ErrInvalidBound, fmt.Errorf("%s: %q", name, s))
	}
	return v, true, nil
}
