// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/discochess/chessclient"
)

// Config is the environment-level configuration shared by the CLI and the
// fx module. Flags, when given, take precedence.
type Config struct {
	// ServerURL is the chess server origin.
	ServerURL string `env:"CHESSCLIENT_SERVER_URL" envDefault:"http://localhost:3030"`

	// Timeout bounds each request. Zero disables the client timeout.
	Timeout time.Duration `env:"CHESSCLIENT_TIMEOUT" envDefault:"10s"`

	// OTelEndpoint is the OTLP/HTTP collector URL. Tracing is off when empty.
	OTelEndpoint string `env:"CHESSCLIENT_OTEL_ENDPOINT"`

	// OTelEnabled turns tracing off even when an endpoint is set.
	OTelEnabled bool `env:"CHESSCLIENT_OTEL_ENABLED" envDefault:"true"`

	// MetricsAddr is where the CLI serves Prometheus metrics, e.g. ":9090".
	MetricsAddr string `env:"CHESSCLIENT_METRICS_ADDR"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("parse env: CHESSCLIENT_TIMEOUT must not be negative, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// TracingEnabled reports whether spans should be exported.
func (c Config) TracingEnabled() bool {
	return c.OTelEnabled && c.OTelEndpoint != ""
}

// ClientOptions translates the configuration into client options.
func (c Config) ClientOptions() []chessclient.Option {
	opts := []chessclient.Option{
		chessclient.WithBaseURL(c.ServerURL),
		chessclient.WithTimeout(c.Timeout),
	}
	if c.TracingEnabled() {
		opts = append(opts, chessclient.WithTracing())
	}
	return opts
}
