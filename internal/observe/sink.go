package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/abhisek/romatype/internal/notify"
)

// Sink returns a notification sink that records every event into m.
func (m *Metrics) Sink() notify.Sink {
	return notify.SinkFunc(m.record)
}

func (m *Metrics) record(e notify.Event) {
	ctx := context.Background()
	diff := attribute.String("difficulty", string(e.Difficulty))

	m.Events.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", e.Kind.String()),
		diff,
	))

	switch e.Kind {
	case notify.Correct:
		if e.Bonus > 0 {
			m.BonusPoints.Add(ctx, int64(e.Bonus), metric.WithAttributes(diff))
		}
	case notify.Error:
		// Error events carry the combo that was running before the miss.
		if e.Combo > 0 {
			m.ComboLength.Record(ctx, int64(e.Combo), metric.WithAttributes(diff))
		}
	case notify.SessionStart:
		m.ActiveSessions.Add(ctx, 1)
	case notify.SessionEnd:
		m.ActiveSessions.Add(ctx, -1)
	}
}
