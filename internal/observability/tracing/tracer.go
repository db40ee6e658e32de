package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the mini-blog application.
var tracer = otel.Tracer("mini-blog")

// GetTracer returns the global tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}

// ProviderConfig configures the SDK tracer provider.
type ProviderConfig struct {
	ServiceName string
	// SampleRatio is the fraction of root spans sampled, between 0 and 1.
	SampleRatio float64
	// Processors receive finished spans. None means spans are sampled and
	// correlated in logs but not exported.
	Processors []sdktrace.SpanProcessor
}

// InitProvider installs an SDK tracer provider and the W3C trace context
// propagator as globals. The returned function flushes and shuts it down.
func InitProvider(cfg ProviderConfig) func(context.Context) error {
	res := resource.NewSchemaless(semconv.ServiceName(cfg.ServiceName))

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}
	for _, p := range cfg.Processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown tracer provider: %w", err)
		}
		return nil
	}
}

// StartStoreSpan starts a client span for one document store operation.
func StartStoreSpan(ctx context.Context, backend, collection, operation string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "store."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", backend),
			attribute.String("db.collection.name", collection),
			attribute.String("db.operation.name", operation),
		),
	)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
