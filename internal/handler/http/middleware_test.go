package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-blog/internal/handler/http/requestid"
	"mini-blog/internal/observability/logging"
)

// captureLogger returns a JSON logger writing into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// logLines decodes every JSON log line in buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET request with 200 response", http.MethodGet, "/articles/abc", http.StatusOK},
		{"POST request", http.MethodPost, "/articles/", http.StatusCreated},
		{"request with 500 error", http.MethodGet, "/error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()
			handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.expectedStatus)
				_, _ = w.Write([]byte("response body"))
			}))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("User-Agent", "test-agent/1.0")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			lines := logLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "request completed", lines[0]["msg"])
			assert.Equal(t, tt.method, lines[0]["method"])
			assert.Equal(t, tt.path, lines[0]["path"])
			assert.EqualValues(t, tt.expectedStatus, lines[0]["status"])
			assert.EqualValues(t, len("response body"), lines[0]["bytes"])
		})
	}
}

func TestLogging_DefaultStatusAndRoute(t *testing.T) {
	logger, buf := captureLogger()

	r := chi.NewRouter()
	r.Use(Logging(logger))
	r.Get("/articles/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles/abc", nil))

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.EqualValues(t, http.StatusOK, lines[0]["status"])
	assert.Equal(t, "/articles/{id}", lines[0]["route"])
}

func TestLogging_InjectsRequestLogger(t *testing.T) {
	logger, buf := captureLogger()

	handler := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(requestid.RequestIDHeader, "req-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	lines := logLines(t, buf)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "req-123", line["request_id"], "line %v", line["msg"])
	}
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name        string
		panicValue  interface{}
		shouldPanic bool
	}{
		{name: "panic with string", panicValue: "something went wrong", shouldPanic: true},
		{name: "panic with error", panicValue: fmt.Errorf("test error"), shouldPanic: true},
		{name: "no panic", shouldPanic: false},
		{name: "panic with number", panicValue: 42, shouldPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()
			handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.shouldPanic {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rr := httptest.NewRecorder()

			// Should not panic - middleware catches it
			handler.ServeHTTP(rr, req)

			if tt.shouldPanic {
				assert.Equal(t, http.StatusInternalServerError, rr.Code)
				assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
				assert.Contains(t, buf.String(), "panic recovered")
			} else {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestRecover_RepanicsOnAbortHandler(t *testing.T) {
	logger, _ := captureLogger()
	handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestLimitRequestBody(t *testing.T) {
	tests := []struct {
		name           string
		maxBytes       int64
		bodySize       int
		expectedStatus int
	}{
		{"small body within limit", 1024, 512, http.StatusOK},
		{"body exactly at limit", 1024, 1024, http.StatusOK},
		{"body exceeds limit", 100, 200, http.StatusRequestEntityTooLarge},
		{"very large body", 1024, 10240, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LimitRequestBody(tt.maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := io.ReadAll(r.Body); err != nil {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))

			body := strings.Repeat("a", tt.bodySize)
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
