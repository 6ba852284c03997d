package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by Load when it exists and no other file is given.
const DefaultEnvFile = ".env"

type options struct {
	files    []string
	prefix   string
	required bool
}

// Option customises Load.
type Option func(*options)

// WithEnvFiles reads the given files instead of DefaultEnvFile. Unlike the
// default file they must exist.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRequiredIfNoDefault makes every field without envDefault required.
func WithRequiredIfNoDefault() Option {
	return func(o *options) {
		o.required = true
	}
}

// Load parses environment variables into v according to its struct tags.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if err := loadEnvFiles(o.files); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:          o.prefix,
		RequiredIfNoDef: o.required,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		files = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
