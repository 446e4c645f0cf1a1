package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadOption tunes a single Load call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix prepends prefix to every env tag, e.g. "NUMSTEP_" turns
// `env:"STEP"` into NUMSTEP_STEP.
func WithPrefix(prefix string) LoadOption {
	return func(o *loadOptions) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files instead of the default one.
// Unlike the default file, a missing explicit file is an error.
func WithEnvFiles(files ...string) LoadOption {
	return func(o *loadOptions) {
		o.files = append(o.files, files...)
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. No .env file is read.
func WithEnvironment(environment map[string]string) LoadOption {
	return func(o *loadOptions) {
		o.environment = environment
	}
}

// Load parses environment variables into v based on its `env` struct tags.
//
// The default .env file in the working directory is read once per process
// if present; its absence is not an error.
//
// Example:
//
//	type Config struct {
//		Step float64 `env:"STEP" envDefault:"1"`
//		Max  string  `env:"MAX"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("NUMSTEP_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...LoadOption) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	switch {
	case o.environment != nil:
	case len(o.files) > 0:
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	default:
		defaultEnvLoaded.Do(func() {
			// The .env file is optional.
			_ = godotenv.Load()
		})
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...LoadOption) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
