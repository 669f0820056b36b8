// Package chessclient is a client for a remote chess server that owns the
// game: it fetches the current board position and submits moves over
// HTTP/JSON.
//
// Example usage:
//
//	client, err := chessclient.New(
//	    chessclient.WithBaseURL("http://localhost:3030"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	result, err := client.SubmitMove(ctx, "e2", "e4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Rejected() {
//	    fmt.Println("rejected:", result.Reason())
//	}
//	fmt.Println(result.Position)
//
// Failures are split in two: a *TransportError when the request could not
// complete and a *ProtocolError when the server answered with an
// unexpected body. A move refused by the server is neither; it comes back
// as data in MoveResult.
package chessclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/chessclient/internal/stats"
	"github.com/discochess/chessclient/internal/wire"
)

// Operation names carried by errors and log entries.
const (
	OpFetchPosition = "fetch position"
	OpSubmitMove    = "submit move"
	OpPing          = "ping"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// Client talks to a single chess server.
// A Client holds no game state and is safe for concurrent use by multiple
// goroutines. Concurrent calls are not ordered relative to each other.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	transport  *http.Transport // owned; nil when supplied by the caller
	stats      stats.Collector
	logger     *zap.Logger
	closed     atomic.Bool

	inflightMu sync.Mutex
	inflight   int64
}

// New creates a new Client with the given options.
// Without WithBaseURL the client targets DefaultBaseURL.
func New(opts ...Option) (*Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	base, err := parseBaseURL(cfg.baseURL)
	if err != nil {
		return nil, err
	}

	hc, transport := cfg.buildHTTPClient()
	c := &Client{
		baseURL:    base,
		httpClient: hc,
		transport:  transport,
		stats:      cfg.stats,
		logger:     cfg.logger,
	}

	c.logger.Debug("client initialized",
		zap.String("baseURL", c.baseURL.String()),
		zap.Duration("timeout", hc.Timeout),
		zap.Bool("tracing", cfg.tracing),
	)

	return c, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidBaseURL, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("%w: %q: query and fragment not allowed", ErrInvalidBaseURL, raw)
	}
	return u, nil
}

// BaseURL returns the server origin this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Timeout returns the overall per-request timeout of the underlying HTTP
// client. Zero means requests are bounded only by their context.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// FetchPosition returns the server's current board position.
func (c *Client) FetchPosition(ctx context.Context) (Position, error) {
	status, body, err := c.roundTrip(ctx, OpFetchPosition, http.MethodGet, wire.PathPosition, nil)
	if err != nil {
		return "", err
	}

	fen, err := wire.DecodePosition(body)
	if err != nil {
		return "", c.protocolError(OpFetchPosition, status, body, err)
	}
	return Position(fen), nil
}

// SubmitMove asks the server to move the piece on source to destination.
// Squares are sent as given; the server decides whether they mean anything.
//
// A move the server refuses is reported through MoveResult.Error with a nil
// error. The returned error is non-nil only for transport and protocol
// failures.
func (c *Client) SubmitMove(ctx context.Context, source, destination string) (*MoveResult, error) {
	payload, err := wire.EncodeMove(source, destination)
	if err != nil {
		return nil, fmt.Errorf("encoding move: %w", err)
	}

	status, body, err := c.roundTrip(ctx, OpSubmitMove, http.MethodPost, wire.PathMove, payload)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("move response",
		zap.String("src", source),
		zap.String("dst", destination),
		zap.Int("status", status),
		zap.ByteString("body", body),
	)

	reply, err := wire.DecodeMove(body)
	if err != nil {
		return nil, c.protocolError(OpSubmitMove, status, body, err)
	}

	if reply.Rejection != nil {
		c.stats.IncCounter(stats.MetricMoveRejections, 1)
	}
	return &MoveResult{
		Position: Position(reply.PositionFEN),
		Error:    reply.Rejection,
	}, nil
}

// Ping calls the server's greeting endpoint and returns its message.
func (c *Client) Ping(ctx context.Context) (string, error) {
	status, body, err := c.roundTrip(ctx, OpPing, http.MethodGet, wire.PathHello, nil)
	if err != nil {
		return "", err
	}

	msg, err := wire.DecodeHello(body)
	if err != nil {
		return "", c.protocolError(OpPing, status, body, err)
	}
	return msg, nil
}

// Close releases idle connections held by the client.
// After Close, every call returns ErrClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	return nil
}

// roundTrip sends one request and returns the status and body of the
// response, whatever the status. Any failure to obtain the full body is a
// TransportError; a body over maxResponseBytes is a ProtocolError.
func (c *Client) roundTrip(ctx context.Context, op, method, path string, payload []byte) (int, []byte, error) {
	if c.closed.Load() {
		return 0, nil, ErrClosed
	}

	endpoint := c.baseURL.JoinPath(path).String()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.stats.IncCounter(stats.MetricRequests, 1)
	c.trackInFlight(1)
	start := time.Now()
	defer func() {
		c.trackInFlight(-1)
		c.stats.ObserveHistogram(stats.MetricRequestDuration, time.Since(start).Seconds())
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, c.transportError(op, endpoint, unwrapURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return 0, nil, c.transportError(op, endpoint, fmt.Errorf("reading body: %w", err))
	}
	if len(body) > maxResponseBytes {
		return 0, nil, c.protocolError(op, resp.StatusCode, body,
			fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, maxResponseBytes))
	}

	c.logger.Debug("response received",
		zap.String("op", op),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	return resp.StatusCode, body, nil
}

// trackInFlight adjusts the in-flight count and publishes it. The lock keeps
// gauge updates in the same order as the count changes.
func (c *Client) trackInFlight(delta int64) {
	c.inflightMu.Lock()
	defer c.inflightMu.Unlock()
	c.inflight += delta
	c.stats.SetGauge(stats.MetricRequestsInFlight, c.inflight)
}

func (c *Client) transportError(op, endpoint string, err error) error {
	c.stats.IncCounter(stats.MetricTransportErrors, 1)
	c.logger.Debug("transport failure",
		zap.String("op", op),
		zap.String("url", endpoint),
		zap.Error(err),
	)
	return &TransportError{Op: op, URL: endpoint, Err: err}
}

func (c *Client) protocolError(op string, status int, body []byte, err error) error {
	c.stats.IncCounter(stats.MetricProtocolErrors, 1)
	c.logger.Debug("protocol failure",
		zap.String("op", op),
		zap.Int("status", status),
		zap.Error(err),
	)
	return newProtocolError(op, status, body, err)
}

// unwrapURLError drops the *url.Error layer; TransportError already
// carries the operation and URL.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
