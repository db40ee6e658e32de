// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Blog metrics (documents written, rejected article writes)
//   - Document store metrics (operation latency, open sessions)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "mini-blog/internal/observability/metrics"
//
//	func createArticle(ctx context.Context) error {
//	    // ... insert article ...
//	    metrics.RecordDocumentWritten("articles", "create")
//	    return nil
//	}
package metrics
