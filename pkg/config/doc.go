// Package config fills configuration structs from environment variables
// with github.com/caarlos0/env. Variables may also come from .env files read
// with github.com/joho/godotenv; values already present in the process
// environment win.
//
//	type Config struct {
//		Addr      string        `env:"HTTP_ADDR" envDefault:":8080"`
//		RateLimit int           `env:"RATE_LIMIT" envDefault:"60"`
//		Timeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
