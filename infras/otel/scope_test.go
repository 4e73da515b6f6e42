package otel_test

import (
	"context"
	"errors"
	"testing"

	"resort/infras/otel"
	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordScope(t *testing.T, fn func(otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")

	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_ServerErrorMarksSpan(t *testing.T) {
	span := recordScope(t, func(s otel.Scope) {
		s.TraceIfError(errors.New("connection refused"))
	})

	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "connection refused", span.Status().Description)
}

func TestScope_ClientFailureIsEvent(t *testing.T) {
	span := recordScope(t, func(s otel.Scope) {
		s.TraceError(failure.Conflict("room is fully booked"))
	})

	assert.Equal(t, codes.Unset, span.Status().Code)
	require.Len(t, span.Events(), 1)
	assert.Equal(t, "client_failure", span.Events()[0].Name)
	assert.Contains(t, span.Events()[0].Attributes, attribute.Int("failure.code", 409))
}

func TestScope_Attributes(t *testing.T) {
	span := recordScope(t, func(s otel.Scope) {
		s.SetAttribute("room.id", "r-1")
		s.SetAttributes(map[string]any{
			"booking.rooms": 2,
			"booking.total": 450.5,
			"booking.paid":  false,
		})
		s.TraceIfError(nil)
	})

	attrs := span.Attributes()
	assert.Contains(t, attrs, attribute.String("room.id", "r-1"))
	assert.Contains(t, attrs, attribute.Int("booking.rooms", 2))
	assert.Contains(t, attrs, attribute.Float64("booking.total", 450.5))
	assert.Contains(t, attrs, attribute.Bool("booking.paid", false))
	assert.Equal(t, codes.Unset, span.Status().Code)
}
