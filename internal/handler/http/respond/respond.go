// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps domain errors to status codes and masks internal failures so that
// store details never reach the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/observability/logging"
	"mini-blog/internal/repository"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Status maps an error to the HTTP status code the API reports for it.
func Status(err error) int {
	var (
		vErr   *entity.ValidationError
		tooBig *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &vErr), errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err with the status returned by Status. Server errors are
// logged through the request logger.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	code := Status(err)
	if code >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
	}
	SafeError(w, code, err)
}

// SafeError writes a client-facing message for err. Validation and not-found
// errors are reported by their own message; anything at 5xx is masked.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	JSON(w, code, map[string]string{"error": safeMessage(code, err)})
}

func safeMessage(code int, err error) string {
	switch code {
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	case http.StatusRequestEntityTooLarge:
		return "request body too large"
	}
	if code >= http.StatusInternalServerError {
		return "internal server error"
	}

	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var nf *entity.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	if errors.Is(err, entity.ErrNotFound) {
		return "not found"
	}
	return http.StatusText(code)
}
