package api

import "time"

// Config holds service limits, loadable with config.Load.
type Config struct {
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"120"`
	RateWindow      time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
	MaxBatch        int           `env:"MAX_BATCH" envDefault:"100"`
	MaxGenerate     int           `env:"MAX_GENERATE" envDefault:"100"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" envDefault:"pt-BR"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		RateLimit:       120,
		RateWindow:      time.Minute,
		MaxBatch:        100,
		MaxGenerate:     100,
		DefaultLanguage: "pt-BR",
	}
}
