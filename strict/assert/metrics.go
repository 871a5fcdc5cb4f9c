package assert

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// FailureMetricName is the counter incremented for every reported failure.
const FailureMetricName = "strict.assertion_failures"

// Metrics counts reported failures by component, operation and event.
type Metrics struct {
	counter metric.Int64Counter
}

// NewMetrics creates the failure counter on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		return nil, fmt.Errorf("meter is required")
	}

	counter, err := meter.Int64Counter(
		FailureMetricName,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of values rejected or host calls failed"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", FailureMetricName, err)
	}

	return &Metrics{counter: counter}, nil
}

// Record adds one failure. A nil *Metrics records nothing.
func (m *Metrics) Record(ctx context.Context, component, operation, event string) {
	if m == nil || m.counter == nil {
		return
	}

	m.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
		attribute.String("operation", operation),
		attribute.String("event", event),
	))
}

var (
	metricsInstance *Metrics
	metricsMu       sync.RWMutex
)

// InitMetrics installs the process-wide Metrics used by every Asserter that
// was not given its own. Only the first successful call takes effect.
func InitMetrics(meter metric.Meter) error {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	if metricsInstance != nil {
		return nil
	}

	m, err := NewMetrics(meter)
	if err != nil {
		return err
	}

	metricsInstance = m

	return nil
}

// GetMetrics returns the process-wide Metrics, or nil before InitMetrics.
func GetMetrics() *Metrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()

	return metricsInstance
}

// ResetMetrics clears the process-wide Metrics.
func ResetMetrics() {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	metricsInstance = nil
}
