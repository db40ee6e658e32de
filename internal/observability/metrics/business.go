package metrics

import "time"

// RecordDocumentWritten records a successful create, update or delete.
func RecordDocumentWritten(collection, operation string) {
	DocumentsWrittenTotal.WithLabelValues(collection, operation).Inc()
}

// RecordReferenceCheckFailure records an article write rejected because the
// referenced category or author is missing.
func RecordReferenceCheckFailure(operation string) {
	ReferenceCheckFailuresTotal.WithLabelValues(operation).Inc()
}

// RecordUnmatchedUpdate records an article update that matched nothing.
func RecordUnmatchedUpdate() {
	UpdatesWithoutMatchTotal.Inc()
}

// RecordStoreOperation records the duration of one document store call.
// A nil err is labelled "ok", anything else "error".
//
// Example:
//
//	start := time.Now()
//	id, err := coll.insert(ctx, doc)
//	metrics.RecordStoreOperation("postgres", "articles", "insert", time.Since(start), err)
func RecordStoreOperation(backend, collection, operation string, duration time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreOperationDuration.WithLabelValues(backend, collection, operation, result).Observe(duration.Seconds())
}

// SessionOpened increments the open session gauge for backend.
func SessionOpened(backend string) {
	StoreSessionsOpen.WithLabelValues(backend).Inc()
}

// SessionClosed decrements the open session gauge for backend.
func SessionClosed(backend string) {
	StoreSessionsOpen.WithLabelValues(backend).Dec()
}

// RecordSessionError records a failure in the given phase ("open" or "close").
func RecordSessionError(backend, phase string) {
	StoreSessionErrorsTotal.WithLabelValues(backend, phase).Inc()
}

// SetBreakerState publishes a circuit breaker state change.
func SetBreakerState(circuit string, state int) {
	CircuitBreakerState.WithLabelValues(circuit).Set(float64(state))
}
