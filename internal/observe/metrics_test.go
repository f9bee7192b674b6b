package observe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/vocab"
)

// newTestMetrics returns a Metrics instance backed by a ManualReader for
// programmatic metric inspection.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumFor(t *testing.T, m *metricdata.Metrics, kv ...attribute.KeyValue) int64 {
	t.Helper()
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is %T", m.Name, m.Data)
	want := attribute.NewSet(kv...)
	var total int64
	for _, dp := range sum.DataPoints {
		match := true
		for _, attr := range want.ToSlice() {
			v, ok := dp.Attributes.Value(attr.Key)
			if !ok || v != attr.Value {
				match = false
				break
			}
		}
		if match {
			total += dp.Value
		}
	}
	return total
}

func TestSink_CountsEventsByKind(t *testing.T) {
	m, reader := newTestMetrics(t)
	sink := m.Sink()

	sink.Notify(notify.Event{Kind: notify.SessionStart, Difficulty: vocab.Easy})
	sink.Notify(notify.Event{Kind: notify.Keystroke, Difficulty: vocab.Easy})
	sink.Notify(notify.Event{Kind: notify.Keystroke, Difficulty: vocab.Easy})
	sink.Notify(notify.Event{Kind: notify.Correct, Difficulty: vocab.Easy, Combo: 3, Bonus: 1})
	sink.Notify(notify.Event{Kind: notify.Correct, Difficulty: vocab.Hard, Combo: 5, Bonus: 2})

	rm := collect(t, reader)
	events := findMetric(rm, "romatype.events")
	assert.Equal(t, int64(2), sumFor(t, events, attribute.String("kind", "keystroke")))
	assert.Equal(t, int64(2), sumFor(t, events, attribute.String("kind", "correct")))
	assert.Equal(t, int64(1), sumFor(t, events,
		attribute.String("kind", "correct"), attribute.String("difficulty", "hard")))

	bonus := findMetric(rm, "romatype.bonus.points")
	assert.Equal(t, int64(3), sumFor(t, bonus))
	assert.Equal(t, int64(2), sumFor(t, bonus, attribute.String("difficulty", "hard")))
}

func TestSink_ActiveSessions(t *testing.T) {
	m, reader := newTestMetrics(t)
	sink := m.Sink()

	sink.Notify(notify.Event{Kind: notify.SessionStart})
	sink.Notify(notify.Event{Kind: notify.SessionStart})
	sink.Notify(notify.Event{Kind: notify.SessionEnd})

	rm := collect(t, reader)
	assert.Equal(t, int64(1), sumFor(t, findMetric(rm, "romatype.sessions.active")))
}

func TestSink_ComboLengthOnError(t *testing.T) {
	m, reader := newTestMetrics(t)
	sink := m.Sink()

	sink.Notify(notify.Event{Kind: notify.Error, Combo: 0})
	sink.Notify(notify.Event{Kind: notify.Error, Combo: 7})

	rm := collect(t, reader)
	got := findMetric(rm, "romatype.combo.length")
	require.NotNil(t, got)
	hist, ok := got.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
	assert.Equal(t, int64(7), hist.DataPoints[0].Sum)
}

func TestHandler_ExposesPrometheusText(t *testing.T) {
	p, err := InitProvider(context.Background(), ProviderConfig{ServiceVersion: "test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	m, err := NewMetrics(p.MeterProvider)
	require.NoError(t, err)
	m.Sink().Notify(notify.Event{Kind: notify.Correct, Difficulty: vocab.Normal})

	rec := httptest.NewRecorder()
	Handler(p.Registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "romatype_events")
	assert.Contains(t, rec.Body.String(), `kind="correct"`)
}

func TestServe_StopsOnCancel(t *testing.T) {
	p, err := InitProvider(context.Background(), ProviderConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, "127.0.0.1:0", "/metrics", p.Registry, zerolog.Nop()) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
