// Package logger provides a zap-based stats collector that logs metrics.
package logger

import (
	"go.uber.org/zap"

	"github.com/discochess/chessclient/internal/stats"
)

// Collector implements stats.Collector by writing each sample as a debug entry.
type Collector struct {
	logger *zap.Logger
}

var _ stats.Collector = (*Collector)(nil)

// New creates a new logger-based collector.
// If logger is nil, a no-op logger is used.
func New(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{logger: logger}
}

func (c *Collector) IncCounter(name string, delta int64) {
	c.emit("counter", name, zap.Int64("delta", delta))
}

func (c *Collector) SetGauge(name string, value int64) {
	c.emit("gauge", name, zap.Int64("value", value))
}

func (c *Collector) ObserveHistogram(name string, value float64) {
	c.emit("histogram", name, zap.Float64("value", value))
}

func (c *Collector) emit(kind, name string, sample zap.Field) {
	c.logger.Debug(kind, zap.String("metric", name), sample)
}
