// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//	type Config struct {
//		Step     float64 `env:"STEP" envDefault:"1"`
//		MaxTries int     `env:"MAX_TRIES" envDefault:"100"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("NUMSTEP_")); err != nil {
//		return err
//	}
//
// The default .env file is read at most once per process and may be absent.
// Files passed with WithEnvFiles must exist. WithEnvironment parses from an
// explicit map, which keeps tests independent of the process environment.
//
// Errors are wrapped with errors.Join so callers can match ErrParsingConfig,
// ErrLoadingEnvFile or ErrNilPointer with errors.Is while keeping the
// underlying cause. MustLoad panics instead of returning an error.
package config
