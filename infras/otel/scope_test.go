package otel

import (
	"context"
	"errors"
	"resort/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracing := &otelImpl{provider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))}

	_, scope := tracing.NewScope(context.Background(), "service", "service.CreateBooking")
	scope.SetAttributes(map[string]any{
		"booking.guests": 2,
		"booking.total":  1500000.0,
		"booking.paid":   false,
	})
	scope.AddEvent("reference assigned")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("accommodation not found"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "service.CreateBooking", span.Name())
	assert.Equal(t, "service", span.InstrumentationScope().Name)
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "accommodation not found", span.Status().Description)
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int("booking.guests", 2),
		attribute.Float64("booking.total", 1500000.0),
		attribute.Bool("booking.paid", false),
	}, span.Attributes())
	assert.Len(t, span.Events(), 2)
}

func TestAttributeOf(t *testing.T) {
	assert.Equal(t, attribute.String("k", "v"), attributeOf("k", "v"))
	assert.Equal(t, attribute.Int64("k", 7), attributeOf("k", int64(7)))
	assert.Equal(t, attribute.StringSlice("k", []string{"a"}), attributeOf("k", []string{"a"}))
	assert.Equal(t, attribute.String("k", "[1 2]"), attributeOf("k", []int{1, 2}))
}

func TestNew_WithoutEndpointDiscardsSpans(t *testing.T) {
	tracing := New(testConfig())

	ctx, scope := tracing.NewScope(context.Background(), "handler", "handler.Health")
	defer scope.End()

	assert.NotNil(t, ctx)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "resort"

	return cfg
}
