package otel_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pms/config"
	"pms/infras/otel"
	"pms/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "pms-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Calendar")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"room_id": "room-2",
		"days":    14,
		"open":    true,
		"rooms":   []string{"room-1", "room-2"},
		"rate":    99.5,
	})
	scope.AddEvent("resolved")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func recordSpan(t *testing.T, run func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "booking.Create")
	scope := otel.NewScope(span)
	run(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantEvent  string
		wantCode   int64
	}{
		{
			name:       "conflict is recorded as a rejection",
			err:        failure.Conflict("room 101 is already booked"),
			wantStatus: codes.Unset,
			wantEvent:  "request.rejected",
			wantCode:   http.StatusConflict,
		},
		{
			name:       "unavailable store fails the span",
			err:        failure.ServiceUnavailable("store unreachable"),
			wantStatus: codes.Error,
			wantEvent:  "exception",
			wantCode:   http.StatusServiceUnavailable,
		},
		{
			name:       "plain error fails the span",
			err:        errors.New("driver: bad connection"),
			wantStatus: codes.Error,
			wantEvent:  "exception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := recordSpan(t, func(scope otel.Scope) { scope.TraceIfError(tt.err) })

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.Len(t, span.Events(), 1)
			assert.Equal(t, tt.wantEvent, span.Events()[0].Name)

			var code int64
			for _, attr := range span.Attributes() {
				if attr.Key == "failure.code" {
					code = attr.Value.AsInt64()
				}
			}

			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestScope_DateAttributes(t *testing.T) {
	checkIn := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	span := recordSpan(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{"check_in": checkIn, "nights": int64(3)})
	})

	values := map[string]string{}
	for _, attr := range span.Attributes() {
		values[string(attr.Key)] = attr.Value.Emit()
	}

	assert.Equal(t, "2025-03-14", values["check_in"])
	assert.Equal(t, "3", values["nights"])
}
