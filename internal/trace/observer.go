// Package trace records counter changes as OpenTelemetry spans and exports them
// over OTLP when an endpoint is configured.
package trace

import (
	"context"

	"counterapp/internal/counter"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// TracerName identifies spans produced by this package.
	TracerName = "counterapp/counter"
	// SpanChange is emitted once per change of the count.
	SpanChange = "counter.change"
)

// Attribute keys on SpanChange.
const (
	AttrCount     = attribute.Key("counterapp.count")
	AttrVariant   = attribute.Key("counterapp.variant")
	AttrCelebrate = attribute.Key("counterapp.celebrate")
	AttrAtMin     = attribute.Key("counterapp.at_min")
	AttrAtMax     = attribute.Key("counterapp.at_max")
)

// Observer turns counter notifications into spans.
type Observer struct {
	ctx    context.Context
	tracer oteltrace.Tracer
}

// NewObserver creates an observer on tp. A nil provider yields a noop tracer.
func NewObserver(ctx context.Context, tp oteltrace.TracerProvider) *Observer {
	if tp == nil {
		tp = noop.NewTracerProvider()
	}
	return &Observer{ctx: ctx, tracer: tp.Tracer(TracerName)}
}

// Listener returns the counter.Listener to pass to Counter.Subscribe.
func (o *Observer) Listener() counter.Listener {
	return o.Record
}

// Record emits one SpanChange for s.
func (o *Observer) Record(s counter.State) {
	_, span := o.tracer.Start(o.ctx, SpanChange, oteltrace.WithAttributes(
		AttrCount.Int(s.Count),
		AttrVariant.String(string(s.Variant)),
		AttrCelebrate.Bool(s.Count == counter.CelebrateAt),
		AttrAtMin.Bool(s.AtMin()),
		AttrAtMax.Bool(s.AtMax()),
	))
	span.End()
}
