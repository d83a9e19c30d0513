package database

import (
	"context"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// DefaultSlowUnitThreshold is how long a unit of work may take before it is reported
const DefaultSlowUnitThreshold = 100 * time.Millisecond

// UnitMetrics holds metrics about one unit of work
type UnitMetrics struct {
	Operation    string
	Duration     time.Duration
	Attempts     int
	Failed       bool
	ErrorMessage string
}

// MetricsSnapshot is a point-in-time copy of the collector counters
type MetricsSnapshot struct {
	Units     int64
	Failures  int64
	Retries   int64
	SlowUnits int64
}

// MetricsCollector collects unit of work metrics
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration

	units     atomic.Int64
	failures  atomic.Int64
	retries   atomic.Int64
	slowUnits atomic.Int64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowUnitThreshold
	}
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// Measure times fn, which reports how many attempts it needed
func (c *MetricsCollector) Measure(ctx context.Context, operation string, fn func() (int, error)) (*UnitMetrics, error) {
	start := c.timeProvider.Now()

	attempts, err := fn()

	metrics := &UnitMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Since(start).Std(),
		Attempts:  attempts,
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
		c.failures.Add(1)
	}
	c.units.Add(1)
	if attempts > 1 {
		c.retries.Add(int64(attempts - 1))
	}

	if metrics.Duration > c.slowThreshold {
		c.slowUnits.Add(1)
		c.logger.Warn("Slow unit of work detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"attempts":      attempts,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}

// Snapshot returns the counters collected so far
func (c *MetricsCollector) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Units:     c.units.Load(),
		Failures:  c.failures.Load(),
		Retries:   c.retries.Load(),
		SlowUnits: c.slowUnits.Load(),
	}
}
