package httpapi

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP adapter settings, loaded from the environment.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"QRNG_ADDR" envDefault:":8080"`

	// Features is the whitening window width used for /generate requests.
	Features int `env:"QRNG_FEATURES" envDefault:"8"`

	// MaxBytes caps a single /generate request.
	MaxBytes int `env:"QRNG_MAX_BYTES" envDefault:"1048576"`
}

// ParseConfig loads Config from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
