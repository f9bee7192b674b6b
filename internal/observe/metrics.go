// Package observe exports gameplay metrics through OpenTelemetry. A
// Prometheus exporter bridge is set up by [InitProvider] so a scrape endpoint
// can be served while the TUI runs. Tests should use [NewMetrics] with a
// ManualReader-backed provider.
package observe

import (
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all romatype metrics.
const meterName = "github.com/abhisek/romatype"

// Metrics holds the OpenTelemetry instruments fed by game events.
type Metrics struct {
	// Events counts game events. Attributes: kind, difficulty.
	Events metric.Int64Counter

	// BonusPoints counts combo bonus points awarded. Attribute: difficulty.
	BonusPoints metric.Int64Counter

	// ComboLength records the length of each combo when it is broken.
	// Attribute: difficulty.
	ComboLength metric.Int64Histogram

	// ActiveSessions tracks sessions in the playing phase.
	ActiveSessions metric.Int64UpDownCounter
}

var comboBuckets = []float64{1, 3, 5, 10, 20}

// NewMetrics creates the instruments on the given provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Events, err = m.Int64Counter("romatype.events",
		metric.WithDescription("Game events by kind."),
	); err != nil {
		return nil, err
	}
	if met.BonusPoints, err = m.Int64Counter("romatype.bonus.points",
		metric.WithDescription("Combo bonus points awarded."),
	); err != nil {
		return nil, err
	}
	if met.ComboLength, err = m.Int64Histogram("romatype.combo.length",
		metric.WithDescription("Length of a combo at the moment it broke."),
		metric.WithExplicitBucketBoundaries(comboBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ActiveSessions, err = m.Int64UpDownCounter("romatype.sessions.active",
		metric.WithDescription("Sessions currently being played."),
	); err != nil {
		return nil, err
	}

	return met, nil
}
