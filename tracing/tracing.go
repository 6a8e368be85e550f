// Package tracing emits one OpenTelemetry span per goshape validation.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	goshape "github.com/reoring/goshape"
)

// InstrumentationName identifies the tracer.
const InstrumentationName = "github.com/reoring/goshape"

// SpanName is the name of validation spans.
const SpanName = "goshape.validate"

// Hooks returns lifecycle hooks that record a span per validation using tp.
// A nil tp uses the global provider.
func Hooks(tp trace.TracerProvider) goshape.Hooks {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(InstrumentationName)
	return goshape.Hooks{
		OnValidate: func(ctx context.Context, e *goshape.Event) {
			_, span := tracer.Start(ctx, SpanName,
				trace.WithTimestamp(e.Start),
				trace.WithAttributes(
					attribute.String("goshape.name", e.Name),
					attribute.Int("goshape.fields", e.Fields),
					attribute.String("goshape.outcome", string(e.Outcome)),
				),
			)
			if e.Err != nil {
				span.SetAttributes(
					attribute.String("goshape.code", e.Code),
					attribute.String("goshape.path", e.Path),
				)
				span.SetStatus(codes.Error, e.Err.Error())
			}
			span.End(trace.WithTimestamp(e.Start.Add(e.Duration)))
		},
	}
}
