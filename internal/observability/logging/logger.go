// Package logging provides structured logging utilities using the standard library's log/slog package.
// It offers helper functions for creating loggers with consistent configuration and context propagation.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"mini-blog/internal/handler/http/requestid"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatZap  = "zap"
)

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn, error. Anything else means info.
	Level string
	// Format is one of FormatJSON, FormatText or FormatZap.
	Format string
	Output io.Writer
}

// New creates a structured logger writing to opts.Output.
// Source locations are added at debug level and for warnings and errors.
func New(opts Options) (*slog.Logger, error) {
	level := ParseLevel(opts.Level)

	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		return slog.New(slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level:     level,
			AddSource: level <= slog.LevelWarn,
		})), nil
	case FormatText:
		return slog.New(slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level:     level,
			AddSource: level <= slog.LevelWarn,
		})), nil
	case FormatZap:
		return newZapLogger(opts.Output, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
}

// newZapLogger routes slog records through a zap production JSON core.
func newZapLogger(w io.Writer, level slog.Level) *slog.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(w),
		zapLevel(level),
	)

	return slog.New(zapslog.NewHandler(core,
		zapslog.WithCaller(level <= slog.LevelWarn),
		zapslog.AddStacktraceAt(slog.LevelError),
	))
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level <= slog.LevelDebug:
		return zapcore.DebugLevel
	case level <= slog.LevelInfo:
		return zapcore.InfoLevel
	case level <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// ParseLevel converts a LOG_LEVEL value into a slog.Level.
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a new logger that includes the request ID from the context.
// This enables request tracing across log entries.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// WithTrace returns a logger carrying the trace and span IDs of the active
// span in ctx, or logger unchanged when there is none.
func WithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)
}

// FromContext retrieves the logger from the context, or returns the default logger if not found.
// This enables passing loggers through the application via context.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

type contextKey string

const loggerContextKey contextKey = "logger"
