// Package observability groups logging, metrics and tracing for the server.
//
// Subpackages:
//   - logging: slog construction and context propagation of request and trace ids
//   - metrics: Prometheus collectors and recorders
//   - tracing: OpenTelemetry provider, HTTP middleware and store spans
package observability
