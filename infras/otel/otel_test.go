package otel

import (
	"context"
	"cowork/config"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorded() (*otelImpl, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()

	return &otelImpl{tracerProvider: trace.NewTracerProvider(trace.WithSpanProcessor(recorder))}, recorder
}

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	o, recorder := newRecorded()

	_, scope := o.NewScope(context.Background(), "service", "service.booking.Create")
	scope.SetAttributes(map[string]any{
		"room_id":    "r1",
		"minutes":    60,
		"credits":    decimal.RequireFromString("2.50"),
		"start_time": time.Date(2026, 10, 20, 9, 0, 0, 0, time.FixedZone("WIB", 7*60*60)),
		"exempt":     false,
	})
	scope.AddEvent("reserved")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("room unavailable"))
	scope.End()

	spans := recorder.Ended()
	assert.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.booking.Create", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "room unavailable", span.Status().Description)
	assert.Len(t, span.Events(), 2)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "r1", attrs["room_id"].AsString())
	assert.Equal(t, int64(60), attrs["minutes"].AsInt64())
	assert.Equal(t, "2.5", attrs["credits"].AsString())
	assert.Equal(t, "2026-10-20T02:00:00Z", attrs["start_time"].AsString())
	assert.False(t, attrs["exempt"].AsBool())
}

func TestScope_TraceErrorWithoutCause(t *testing.T) {
	o, recorder := newRecorded()

	_, scope := o.NewScope(context.Background(), "handler", "handler.GetMyBookings")
	scope.TraceError(nil)
	scope.End()

	assert.Equal(t, codes.Error, recorder.Ended()[0].Status().Code)
}

func TestSampler(t *testing.T) {
	assert.Equal(t, trace.NeverSample().Description(), sampler(0).Description())
	assert.Contains(t, sampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased{0.25}")
}

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "cowork"
	cfg.External.Otel.SampleRatio = 1

	o := New(cfg)

	_, scope := o.NewScope(context.Background(), "test", "span")
	scope.End()

	assert.NoError(t, o.Shutdown(context.Background()))
}
