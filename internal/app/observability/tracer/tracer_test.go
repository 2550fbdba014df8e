package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func TestInitOtelProviders_WithoutExporters(t *testing.T) {
	p, err := InitOtelProviders(Options{ServiceName: "supra-test"}, zap.NewNop())
	require.NoError(t, err)

	assert.Same(t, p.tracer, otel.GetTracerProvider())
	assert.Nil(t, p.metrics, "no scrape server without an address")

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
}
