// Package persistence holds the document store adapters and the
// instrumentation they share.
package persistence

import (
	"context"
	"time"

	"mini-blog/internal/observability/metrics"
	"mini-blog/internal/observability/tracing"
)

// Observe runs one store operation inside a client span and records its
// latency. The ctx passed to fn carries the span.
func Observe(ctx context.Context, backend, collection, operation string, fn func(context.Context) error) error {
	ctx, span := tracing.StartStoreSpan(ctx, backend, collection, operation)
	start := time.Now()

	err := fn(ctx)

	metrics.RecordStoreOperation(backend, collection, operation, time.Since(start), err)
	tracing.EndSpan(span, err)
	return err
}
