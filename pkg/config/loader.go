package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option adjusts how Load reads the environment.
type Option func(*loader)

type loader struct {
	files  []string
	prefix string
}

// WithEnvFiles loads the given .env files before parsing. Unlike the implicit ./.env,
// a missing file is an error. Variables already present in the environment win.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, files...)
	}
}

// WithPrefix restricts parsing to variables starting with prefix; the prefix is
// prepended to every env tag.
func WithPrefix(prefix string) Option {
	return func(l *loader) { l.prefix = prefix }
}

// Load parses environment variables into v based on its `env` struct tags.
//
// The default .env file in the working directory is loaded once per process if it
// exists. Example:
//
//	type Config struct {
//		Workers int    `env:"WORKERS" envDefault:"4"`
//		Level   string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("RECORDCHECK_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	if len(l.files) > 0 {
		if err := godotenv.Load(l.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: l.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
