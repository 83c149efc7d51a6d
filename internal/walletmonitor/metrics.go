package walletmonitor

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// metrics holds the counters reported by the wallet monitor.
type metrics struct {
	cycles           metric.Int64Counter
	cycleFaults      metric.Int64Counter
	fetchFailures    metric.Int64Counter
	notifications    metric.Int64Counter
	dispatchFailures metric.Int64Counter
}

// newMetrics registers the counters on meter. A counter that cannot be
// registered is replaced by a no-op one.
func newMetrics(meter metric.Meter) metrics {
	fallback := noop.NewMeterProvider().Meter(instrumentationName)

	counter := func(name, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description))
		if err != nil {
			c, _ = fallback.Int64Counter(name)
		}

		return c
	}

	return metrics{
		cycles:           counter("kaspawatch.monitor.cycles", "Number of monitoring cycles started"),
		cycleFaults:      counter("kaspawatch.monitor.cycle_faults", "Number of cycles that ended with an error"),
		fetchFailures:    counter("kaspawatch.monitor.fetch_failures", "Number of failed transaction fetches"),
		notifications:    counter("kaspawatch.monitor.notifications", "Number of delivered notifications"),
		dispatchFailures: counter("kaspawatch.monitor.dispatch_failures", "Number of failed notification deliveries"),
	}
}
