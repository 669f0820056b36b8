package chessclient

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/discochess/chessclient/internal/stats"
)

// DefaultBaseURL is the origin the chess server binds to out of the box.
const DefaultBaseURL = "http://localhost:3030"

// DefaultTimeout bounds a whole request, connection through body, on the
// client-owned HTTP client.
const DefaultTimeout = 10 * time.Second

// Option configures a Client.
type Option interface {
	apply(*options)
}

// options holds the client configuration.
type options struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	tracing    bool
	stats      stats.Collector
	logger     *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		stats:   stats.NewNoop(),
		logger:  zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithBaseURL sets the server origin, e.g. "http://localhost:3030".
// A path component is kept as a prefix for every endpoint.
func WithBaseURL(u string) Option {
	return optionFunc(func(o *options) {
		o.baseURL = u
	})
}

// WithHTTPClient sets the HTTP client used for requests.
// The client is used as given: WithTimeout does not apply to it and Close
// leaves its connections alone.
func WithHTTPClient(c *http.Client) Option {
	return optionFunc(func(o *options) {
		o.httpClient = c
	})
}

// WithTimeout sets the overall per-request timeout of the client-owned
// HTTP client. Zero disables it, leaving only the caller's context.
// Default is DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(o *options) {
		o.timeout = d
	})
}

// WithTracing wraps the transport with OpenTelemetry instrumentation so each
// request produces a client span on the global tracer provider.
func WithTracing() Option {
	return optionFunc(func(o *options) {
		o.tracing = true
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}

// newTransport mirrors http.DefaultTransport with bounded handshake and
// header waits. A zero headerTimeout waits indefinitely.
func newTransport(headerTimeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: headerTimeout,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   4,
	}
}

// buildHTTPClient returns the client to send requests with, and the
// transport the Client owns, if any.
func (o *options) buildHTTPClient() (*http.Client, *http.Transport) {
	if o.httpClient == nil {
		transport := newTransport(o.timeout)
		hc := &http.Client{
			Timeout:   o.timeout,
			Transport: transport,
		}
		if o.tracing {
			hc.Transport = otelhttp.NewTransport(transport)
		}
		return hc, transport
	}

	if !o.tracing {
		return o.httpClient, nil
	}
	// Copy so the caller's client is not instrumented behind its back.
	hc := *o.httpClient
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = otelhttp.NewTransport(base)
	return &hc, nil
}
