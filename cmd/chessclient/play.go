package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/chessclient"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play moves interactively",
	Long: `Show the board and read moves from standard input until "quit" or EOF.

Each move is two squares separated by a space, e.g. "e2 e4". A move the
server rejects is reported and the prompt repeats. A transport or protocol
failure ends the session.

Examples:
  chessclient play
  chessclient play --metrics-addr :9090`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var metricsAddr string

func init() {
	playCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while playing")
	rootCmd.AddCommand(playCmd)
}

const prompt = "Enter your move: "

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := s.cfg.MetricsAddr
	if cmd.Flags().Changed("metrics-addr") {
		addr = metricsAddr
	}
	if addr != "" {
		stopMetrics := serveMetrics(addr, s.registry, s.logger)
		defer stopMetrics()
	}

	return play(ctx, s.client, cmd.InOrStdin(), cmd.OutOrStdout())
}

// play runs the interactive loop. It returns nil on "quit" or end of input.
func play(ctx context.Context, client *chessclient.Client, in io.Reader, out io.Writer) error {
	pos, err := client.FetchPosition(ctx)
	if err != nil {
		return fmt.Errorf("fetching position: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		printPosition(out, pos, true)

		next, done, err := turn(ctx, client, scanner, out)
		if err != nil || done {
			return err
		}
		pos = next
	}
}

// turn prompts until the server accepts a move and returns the position it
// reported. done is set when the player quits or input ends.
func turn(ctx context.Context, client *chessclient.Client, scanner *bufio.Scanner, out io.Writer) (pos chessclient.Position, done bool, err error) {
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return "", true, scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return "", true, nil
		}
		src, dst, ok := parseMove(line)
		if !ok {
			fmt.Fprintln(out, `Invalid move: enter two squares, e.g. "e2 e4"`)
			continue
		}

		result, err := client.SubmitMove(ctx, src, dst)
		if err != nil {
			return "", false, fmt.Errorf("submitting move: %w", err)
		}
		if result.Rejected() {
			fmt.Fprintf(out, "Rejected: %s\n", result.Reason())
			continue
		}
		if result.Position == "" {
			// Accepted without a position; ask for it.
			if result.Position, err = client.FetchPosition(ctx); err != nil {
				return "", false, fmt.Errorf("fetching position: %w", err)
			}
		}
		return result.Position, false, nil
	}
}

// parseMove splits "e2 e4" into its two squares.
func parseMove(line string) (src, dst string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false
	}
	return fields[0], fields[1], true
}

// serveMetrics exposes the registry over HTTP until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.String("addr", addr), zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
