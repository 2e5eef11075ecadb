package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestHoneycombHeaders(t *testing.T) {
	h := Honeycomb{APIKey: "key"}
	assert.True(t, h.Enabled())
	assert.Equal(t, map[string]string{
		"x-honeycomb-team":    "key",
		"x-honeycomb-dataset": "pyramid",
	}, h.Headers())
	assert.Len(t, h.ExporterOptions(), 2)

	h.Dataset = "custom"
	assert.Equal(t, "custom", h.Headers()["x-honeycomb-dataset"])
}

func TestHoneycombDisabled(t *testing.T) {
	h := Honeycomb{Dataset: "custom"}
	assert.False(t, h.Enabled())
	assert.Nil(t, h.ExporterOptions())
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background())
	require.NoError(t, err)

	name, ok := res.Set().Value(attribute.Key("service.name"))
	require.True(t, ok)
	assert.Equal(t, "pyramid", name.AsString())

	_, ok = res.Set().Value(attribute.Key("process.runtime.name"))
	assert.True(t, ok)
}

func TestTracers(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NotNil(t, Tracer("test"))
}
