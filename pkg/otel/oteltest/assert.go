// Package oteltest records spans in memory so tests can assert on them.
// NewTracer replaces the global tracer provider, tests using it must not run in parallel.
package oteltest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type Tracer struct {
	t        *testing.T
	exporter *tracetest.InMemoryExporter
}

func NewTracer(t *testing.T) *Tracer {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()

	t.Cleanup(func() {
		_ = exporter.Shutdown(context.Background())
	})

	tp := trace.NewTracerProvider(
		trace.WithSyncer(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)

	return &Tracer{t: t, exporter: exporter}
}

// AssertSpan asserts that exactly one span named name was ended, with the given kind,
// status and attributes in any order.
func (trc *Tracer) AssertSpan(name string, kind oteltrace.SpanKind, status trace.Status, attr ...attribute.KeyValue) {
	trc.t.Helper()

	var matched []tracetest.SpanStub

	for _, s := range trc.exporter.GetSpans() {
		if s.Name == name {
			matched = append(matched, s)
		}
	}

	require.Len(trc.t, matched, 1, "spans named %q", name)
	actualSpan := matched[0]
	assert.Equal(trc.t, kind, actualSpan.SpanKind)
	assert.Equal(trc.t, status, actualSpan.Status)
	assert.ElementsMatch(trc.t, attr, actualSpan.Attributes)
}

// AssertSpanCount asserts the total number of ended spans.
func (trc *Tracer) AssertSpanCount(n int) {
	trc.t.Helper()

	assert.Len(trc.t, trc.exporter.GetSpans(), n)
}
