package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/chessclient"
	"github.com/discochess/chessclient/internal/config"
	"github.com/discochess/chessclient/internal/otel"
	promstats "github.com/discochess/chessclient/internal/stats/prometheus"
)

var (
	// Global flags.
	serverURL  string
	timeout    time.Duration
	verbose    bool
	outputJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "chessclient",
	Short: "Play against a remote chess server",
	Long: `chessclient talks to a chess server over HTTP/JSON. The server owns the
game and decides which moves are legal; this tool only shows positions and
submits moves.

The server origin comes from --server, then CHESSCLIENT_SERVER_URL, then
http://localhost:3030.

Examples:
  # Check the server is up
  chessclient ping

  # Show the current position as a board
  chessclient position --board

  # Move the king's pawn
  chessclient move e2 e4

  # Play interactively
  chessclient play`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", chessclient.DefaultBaseURL, "chess server origin")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", chessclient.DefaultTimeout, "per-request timeout (0 disables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output results as JSON")
}

// session is a configured client plus everything that must be torn down
// with it.
type session struct {
	client   *chessclient.Client
	cfg      config.Config
	registry *prometheus.Registry
	logger   *zap.Logger
	shutdown func(context.Context) error
}

// openSession builds a client from the environment, letting explicitly set
// flags win.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("server") {
		cfg.ServerURL = serverURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
	}

	endpoint := ""
	if cfg.TracingEnabled() {
		endpoint = cfg.OTelEndpoint
	}
	shutdown, err := otel.Setup(cmd.Context(), "chessclient", endpoint)
	if err != nil {
		return nil, fmt.Errorf("setting up tracing: %w", err)
	}

	registry := prometheus.NewRegistry()
	opts := append(cfg.ClientOptions(),
		chessclient.WithLogger(logger.Named("chessclient")),
		chessclient.WithStats(promstats.New(registry)),
	)
	client, err := chessclient.New(opts...)
	if err != nil {
		shutdown(context.Background())
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return &session{
		client:   client,
		cfg:      cfg,
		registry: registry,
		logger:   logger,
		shutdown: shutdown,
	}, nil
}

func (s *session) Close() {
	s.client.Close()
	if err := s.shutdown(context.Background()); err != nil {
		s.logger.Warn("flushing traces", zap.Error(err))
	}
	_ = s.logger.Sync()
}
