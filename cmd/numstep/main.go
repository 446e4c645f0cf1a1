// Command numstep drives a numeric field from the command line: it sets a
// value, steps it up or down and randomizes it, printing the value, its
// validity and its description after each operation.
//
// Field defaults come from NUMSTEP_* environment variables (or a .env file)
// and can be overridden with flags:
//
//	NUMSTEP_FIELD_MIN=0 NUMSTEP_FIELD_MAX=24 numstep --value 23 --up 2
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/messages"
	"github.com/dmitrymomot/formkit/pkg/numeric"
	"github.com/dmitrymomot/formkit/pkg/random"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

type appConfig struct {
	Field     numeric.Config `envPrefix:"FIELD_"`
	Name      string         `env:"NAME" envDefault:"value"`
	Lang      string         `env:"LANG_TAG" envDefault:"en"`
	LogLevel  string         `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string         `env:"LOG_FORMAT" envDefault:"text"`
}

type request struct {
	value  string
	up     int
	down   int
	random bool
	seed   int64
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg, config.WithPrefix("NUMSTEP_"))

	if err := run(cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func run(cfg appConfig, args []string, stdout, stderr io.Writer) error {
	var req request

	fs := pflag.NewFlagSet("numstep", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Name, "name", cfg.Name, "field name used in messages")
	fs.BoolVar(&cfg.Field.Integer, "integer", cfg.Field.Integer, "coerce values to whole numbers")
	fs.Float64Var(&cfg.Field.Step, "step", cfg.Field.Step, "step size")
	fs.StringVar(&cfg.Field.Min, "min", cfg.Field.Min, "inclusive lower bound (empty for none)")
	fs.StringVar(&cfg.Field.Max, "max", cfg.Field.Max, "exclusive upper bound (empty for none)")
	fs.BoolVar(&cfg.Field.Rotate, "rotate", cfg.Field.Rotate, "wrap around at the bounds")
	fs.IntVar(&cfg.Field.MaxTries, "max-tries", cfg.Field.MaxTries, "step search limit")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "message language")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&req.value, "value", "", "initial value")
	fs.IntVarP(&req.up, "up", "u", 0, "number of steps up")
	fs.IntVarP(&req.down, "down", "d", 0, "number of steps down")
	fs.BoolVarP(&req.random, "random", "r", false, "randomize the value last")
	fs.Int64Var(&req.seed, "seed", 0, "random seed (0 seeds from time)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatText && format != logger.FormatJSON {
		return fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithFormat(format),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(logger.Component("numstep")),
	)

	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", cfg.Lang, err)
	}
	catalog, err := messages.New(messages.WithLanguage(tag), messages.WithLogger(log))
	if err != nil {
		return err
	}

	opts, err := cfg.Field.Options()
	if err != nil {
		return err
	}
	opts = append(opts,
		numeric.WithDescribeValue(describeRange),
		numeric.WithFieldOptions(
			field.WithValue(req.value),
			field.WithCatalog(catalog),
			field.WithLogger(log),
		),
	)

	f := numeric.New(cfg.Name, opts...)
	report(stdout, "set", f)

	for range req.up {
		report(stdout, "up", f.StepUp())
	}
	for range req.down {
		report(stdout, "down", f.StepDown())
	}

	if req.random {
		src := random.NewTimeSeeded()
		if req.seed != 0 {
			src = random.New(req.seed)
		}
		if !f.Randomize(src) {
			log.Warn("field cannot be randomized", logger.Field(f.Name()))
		}
		report(stdout, "random", f)
	}

	log.Debug("done", logger.Field(f.Name()), logger.Value(f.Value()))
	return nil
}

func report(w io.Writer, op string, f *numeric.Field) {
	if err := f.Err(); err != nil {
		fmt.Fprintf(w, "%-6s %g\tinvalid: %s\n", op, f.Value(), err)
		return
	}
	if desc, ok := f.ValueDescription(); ok {
		fmt.Fprintf(w, "%-6s %g\t%s\n", op, f.Value(), desc)
		return
	}
	fmt.Fprintf(w, "%-6s %g\n", op, f.Value())
}

// describeRange reports the value's position within a bounded range.
func describeRange(v float64, f *numeric.Field) (string, bool) {
	min, okMin := f.Min()
	max, okMax := f.Max()
	if !okMin || !okMax || max <= min {
		return "", false
	}
	pct := sanitizer.RoundToDecimalPlaces((v-min)/(max-min)*100, 1)
	return fmt.Sprintf("%g%% of range", pct), true
}
