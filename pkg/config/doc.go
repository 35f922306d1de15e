// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env tags. A .env file in the working directory
// is picked up automatically through godotenv, and further files can be named with
// WithEnvFiles. Values already set in the process environment always take precedence.
//
// # Usage
//
//	type Config struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//		Workers   int    `env:"WORKERS" envDefault:"0"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("RECORDCHECK_")); err != nil {
//		return err
//	}
//
// # Error Handling
//
// Parse failures wrap ErrParsingConfig and unreadable explicit files wrap
// ErrLoadingEnvFile; check them with errors.Is. MustLoad panics instead of
// returning an error and is meant for process start-up.
package config
