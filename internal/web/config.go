package web

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds web server settings read from the environment.
type Config struct {
	Env             string        `envconfig:"PRACTICA_ENV" default:"development"`
	Addr            string        `envconfig:"PRACTICA_ADDR" default:"127.0.0.1:8080"`
	ReadTimeout     time.Duration `envconfig:"PRACTICA_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"PRACTICA_WRITE_TIMEOUT" default:"15s"`
	RequestTimeout  time.Duration `envconfig:"PRACTICA_REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"PRACTICA_SHUTDOWN_TIMEOUT" default:"10s"`

	// RateLimit is the number of requests allowed per client IP per minute.
	RateLimit int `envconfig:"PRACTICA_RATE_LIMIT" default:"60"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("PRACTICA_RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}
	return cfg, nil
}

// IsProduction returns true when the server runs in production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
