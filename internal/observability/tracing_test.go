package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTracingTest(t *testing.T) *tracetest.SpanRecorder {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)

	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = provider.Shutdown(context.Background())
	})

	return recorder
}

func TestSpanManager_Success(t *testing.T) {
	recorder := setupTracingTest(t)
	sm := NewSpanManager()

	ctx, span := sm.StartGenerateSpan(context.Background(), "A && B", "call-1")
	sm.AddSpanEvent(ctx, "postfix", attribute.Int("tokens", 3))
	sm.EndSpanWithError(span, nil)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "truthtable.generate", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("expression", "A && B"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("call.id", "call-1"))
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "postfix", spans[0].Events()[0].Name)
}

func TestSpanManager_Error(t *testing.T) {
	recorder := setupTracingTest(t)
	sm := NewSpanManager()

	_, span := sm.StartGenerateSpan(context.Background(), "A !", "call-2")
	sm.EndSpanWithError(span, errors.New("operand needed"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "operand needed", spans[0].Status().Description)
}

func TestSpanManager_EventWithoutSpan(t *testing.T) {
	setupTracingTest(t)
	assert.NotPanics(t, func() {
		NewSpanManager().AddSpanEvent(context.Background(), "orphan")
		NewSpanManager().EndSpanWithError(nil, nil)
	})
}

func TestNoopSpanManager(t *testing.T) {
	var sm SpanManager = NoopSpanManager{}
	ctx := context.Background()

	got, span := sm.StartGenerateSpan(ctx, "A", "id")
	assert.Equal(t, ctx, got)
	assert.False(t, span.IsRecording())

	assert.NotPanics(t, func() {
		sm.AddSpanEvent(ctx, "event")
		sm.EndSpanWithError(span, errors.New("ignored"))
		NoopMetrics{}.RecordGeneration(ctx, 1, 2, 0, nil)
	})
}
