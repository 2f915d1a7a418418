package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// SpanName returns the span name for a computation in the named cache.
func SpanName(cacheName string) string {
	return "inflect.compute." + cacheName
}

// Tracer wraps OpenTelemetry tracing with per-computation spans.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan is best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a span for one computation of key in the named cache.
	StartSpan(ctx context.Context, cacheName, key string) (context.Context, trace.Span)

	// EndSpan ends the span, recording err if non-nil.
	EndSpan(span trace.Span, err error)
}

type otelTracer struct {
	tracer trace.Tracer
}

// NewTracer wraps t.
func NewTracer(t trace.Tracer) Tracer {
	if t == nil {
		return newNoopTracer()
	}
	return &otelTracer{tracer: t}
}

// Keys are caller data, so only their length is attached.
func (t *otelTracer) StartSpan(ctx context.Context, cacheName, key string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanName(cacheName),
		trace.WithAttributes(
			attribute.String("cache.name", cacheName),
			attribute.Int("cache.key_len", len(key)),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *otelTracer) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	tracer trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{tracer: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (t *noopTracer) StartSpan(ctx context.Context, cacheName, _ string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, SpanName(cacheName))
}

func (t *noopTracer) EndSpan(span trace.Span, _ error) {
	span.End()
}
