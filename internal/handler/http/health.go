// Package http provides the HTTP surface shared by all routes: request
// logging, panic recovery, body limits, Prometheus metrics and health probes.
// Route handlers live in the article, category and author subpackages.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"mini-blog/internal/handler/http/respond"
	"mini-blog/internal/repository"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy", "degraded" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// BreakerState reports the state of the circuit breaker guarding the store.
type BreakerState interface {
	State() gobreaker.State
}

// HealthHandler handles health check endpoint requests.
// It pings the document store and reports the circuit breaker state.
type HealthHandler struct {
	Store   repository.Store
	Backend string
	Breaker BreakerState // optional
	Version string
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy, or 503 Service Unavailable if the store check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	storeCheck := h.checkStore(ctx)
	checks["store"] = storeCheck
	if storeCheck.Status == "unhealthy" {
		allHealthy = false
	}

	if h.Breaker != nil {
		checks["circuit_breaker"] = h.checkBreaker()
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Default().Error("health: failed to encode response", slog.Any("error", err))
	}
}

func (h *HealthHandler) checkStore(ctx context.Context) CheckStatus {
	if h.Store == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}

	start := time.Now()
	err := h.Store.Ping(ctx)
	details := map[string]any{
		"backend":    h.Backend,
		"latency_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: respond.SanitizeError(err),
			Details: details,
		}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// checkBreaker is informational: an open breaker already shows up as a
// failing store ping.
func (h *HealthHandler) checkBreaker() CheckStatus {
	state := h.Breaker.State()
	status := "healthy"
	if state != gobreaker.StateClosed {
		status = "degraded"
	}
	return CheckStatus{
		Status:  status,
		Details: map[string]any{"state": state.String()},
	}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// It checks that the document store accepts connections.
type ReadyHandler struct {
	Store repository.Store
}

// ServeHTTP performs readiness checks and returns 200 OK if ready,
// or 503 Service Unavailable if the store is not reachable.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Store == nil {
		http.Error(w, "store not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.Store.Ping(ctx); err != nil {
		http.Error(w, "store not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Default().Error("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Default().Error("alive: failed to write response", slog.Any("error", err))
	}
}
