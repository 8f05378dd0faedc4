// Package config loads service configuration from POS_* environment variables.
// Every field has a default, so the service starts with no environment at all.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is prepended to every variable name, e.g. POS_ADDR.
const Prefix = "pos"

// Config holds all service configuration.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:"0.0.0.0:3000"`
	PublicDir       string        `envconfig:"PUBLIC_DIR" default:"public"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	OtelHost        string  `envconfig:"OTEL_HOST"`
	OtelStdout      bool    `envconfig:"OTEL_STDOUT" default:"false"`
	OtelProbability float64 `envconfig:"OTEL_PROBABILITY" default:"1"`

	RedisAddr    string `envconfig:"REDIS_ADDR"`
	RedisChannel string `envconfig:"REDIS_CHANNEL" default:"pos:orders"`

	FeedBuffer  int           `envconfig:"FEED_BUFFER" default:"256"`
	FeedTimeout time.Duration `envconfig:"FEED_TIMEOUT" default:"2s"`
}

// Load reads the environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}
	if c.OtelProbability < 0 || c.OtelProbability > 1 {
		return Config{}, errors.Errorf("load config: OTEL_PROBABILITY must be within [0,1], got %v", c.OtelProbability)
	}
	if c.FeedBuffer < 1 {
		return Config{}, errors.Errorf("load config: FEED_BUFFER must be positive, got %d", c.FeedBuffer)
	}
	return c, nil
}
