// Package tracing provides OpenTelemetry tracing integration.
//
// It installs the SDK tracer provider, wraps HTTP handlers in server spans
// and opens client spans around document store calls.
//
// Example usage:
//
//	import "mini-blog/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.InitProvider(tracing.ProviderConfig{ServiceName: "mini-blog", SampleRatio: 1})
//	    defer shutdown(context.Background())
//	}
//
//	func get(ctx context.Context) error {
//	    ctx, span := tracing.StartStoreSpan(ctx, "surrealdb", "articles", "get")
//	    defer span.End()
//	    // ... query ...
//	}
package tracing
