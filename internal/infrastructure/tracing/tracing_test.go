package tracing

import (
	"context"
	"testing"

	"github.com/alimikegami/seller-dashboard/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracing_WithoutCollector(t *testing.T) {
	ctx := context.Background()

	provider, err := InitTracing(ctx, config.TracingConfig{}, "test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(ctx))
	}()

	_, span := otel.Tracer(ServiceName).Start(ctx, "unit")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}
