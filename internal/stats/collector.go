// Package stats provides a unified interface for collecting client metrics.
package stats

// Metric names used throughout the client.
const (
	// Request metrics, one increment per call that reaches the network.
	MetricRequests        = "chessclient_requests_total"
	MetricRequestDuration = "chessclient_request_duration_seconds"

	// Requests sent and not yet answered.
	MetricRequestsInFlight = "chessclient_requests_in_flight"

	// Failure metrics.
	MetricTransportErrors = "chessclient_transport_errors_total"
	MetricProtocolErrors  = "chessclient_protocol_errors_total"

	// Moves the server answered with an error field.
	MetricMoveRejections = "chessclient_move_rejections_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
