package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"mini-blog/internal/observability/metrics"
)

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"a1", "b2", "c3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles/"+id, nil))
	}

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/articles/{id}", "200"))
	assert.Equal(t, float64(3), got, "all article IDs share one label")
}

func TestMetricsMiddleware_FallsBackToNormalizedPath(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/categories/xyz?debug=1", nil))

	got := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/categories/{id}", "404"))
	assert.Equal(t, float64(1), got)
}

func TestMetricsMiddleware_StatusCodes(t *testing.T) {
	metrics.HTTPRequestsTotal.Reset()

	for _, code := range []int{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusServiceUnavailable} {
		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/articles/", nil))
	}

	assert.Equal(t, 4, testutil.CollectAndCount(metrics.HTTPRequestsTotal))
}

func TestMetricsMiddleware_InFlightReturnsToZero(t *testing.T) {
	before := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, before, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
}

func TestMetricsHandler(t *testing.T) {
	metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200").Inc()

	rr := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "http_requests_total"))
}

func BenchmarkMetricsMiddleware(b *testing.B) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/articles/abc", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
