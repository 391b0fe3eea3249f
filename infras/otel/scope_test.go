package otel_test

import (
	"context"
	"errors"
	"testing"

	"dinedesk/config"
	"dinedesk/infras/otel"
	"dinedesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "dinedesk"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.Span")
	defer scope.End()

	assert.NotNil(t, ctx)

	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{
			"string":  "value",
			"int":     1,
			"int64":   int64(2),
			"float":   1.5,
			"bool":    true,
			"strings": []string{"a", "b"},
			"other":   struct{}{},
		})
		scope.AddEvent("event")
		failed := errors.New("failed")
		scope.TraceIfError(nil)
		scope.TraceIfError(&failed)
	})
}

func TestTraceErrorStatusFollowsFailureCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantCode   int64
	}{
		{name: "validation failure", err: failure.BadRequestFromString("guests is required"), wantStatus: codes.Unset, wantCode: 400},
		{name: "upstream down", err: failure.BadGateway("upstream unreachable"), wantStatus: codes.Error, wantCode: 502},
		{name: "plain error", err: errors.New("boom"), wantStatus: codes.Error, wantCode: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := tracetest.NewInMemoryExporter()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

			_, span := provider.Tracer("test").Start(context.Background(), "op")
			scope := otel.NewScope(span)
			scope.TraceIfError(&tt.err)
			scope.End()

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.wantStatus, spans[0].Status.Code)
			assert.Contains(t, spans[0].Attributes, attribute.Int64("failure.code", tt.wantCode))
			assert.Len(t, spans[0].Events, 1)
		})
	}
}

func TestDeferredTraceIfErrorSeesReturnedError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	op := func() (err error) {
		_, span := provider.Tracer("test").Start(context.Background(), "op")
		scope := otel.NewScope(span)
		defer scope.End()
		defer scope.TraceIfError(&err)

		return failure.BadGateway("upstream unreachable")
	}

	require.Error(t, op())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.Int64("failure.code", 502))
}
