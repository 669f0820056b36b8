// Package chessclientfx provides an fx module for a chess server client.
package chessclientfx

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/chessclient"
	"github.com/discochess/chessclient/internal/config"
	"github.com/discochess/chessclient/internal/stats"
	"github.com/discochess/chessclient/internal/stats/logger"
	promstats "github.com/discochess/chessclient/internal/stats/prometheus"
)

// Config holds configuration for the client.
type Config struct {
	// BaseURL is the chess server origin.
	// Default is chessclient.DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request. Nil keeps chessclient.DefaultTimeout;
	// a zero value disables the client timeout.
	Timeout *time.Duration

	// Tracing instruments requests with OpenTelemetry.
	Tracing bool
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return Config{}, err
	}
	return Config{
		BaseURL: cfg.ServerURL,
		Timeout: &cfg.Timeout,
		Tracing: cfg.TracingEnabled(),
	}, nil
}

// Module provides a *chessclient.Client.
// Requires a Config and a *zap.Logger. When a prometheus.Registerer is also
// provided, client metrics are registered with it; otherwise they are logged.
var Module = fx.Module("chessclient",
	fx.Provide(
		newStatsCollector,
		newClient,
	),
)

// StatsParams holds dependencies for choosing a stats collector.
type StatsParams struct {
	fx.In

	Logger     *zap.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

func newStatsCollector(p StatsParams) stats.Collector {
	if p.Registerer != nil {
		return promstats.New(p.Registerer)
	}
	return logger.New(p.Logger.Named("chessclient.stats"))
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *chessclient.Client
}

func newClient(p Params) (Result, error) {
	opts := []chessclient.Option{
		chessclient.WithStats(p.Collector),
		chessclient.WithLogger(p.Logger.Named("chessclient")),
	}
	if p.Config.BaseURL != "" {
		opts = append(opts, chessclient.WithBaseURL(p.Config.BaseURL))
	}
	if p.Config.Timeout != nil {
		opts = append(opts, chessclient.WithTimeout(*p.Config.Timeout))
	}
	if p.Config.Tracing {
		opts = append(opts, chessclient.WithTracing())
	}

	client, err := chessclient.New(opts...)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{Client: client}, nil
}
