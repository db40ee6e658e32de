// Package logging provides structured logging utilities with context propagation.
//
// Loggers are plain *slog.Logger values. The output handler is chosen by
// format: slog's JSON or text handler, or a zap core via zapslog for
// deployments that already ship zap-formatted logs.
//
// Example usage:
//
//	import "mini-blog/internal/observability/logging"
//
//	func main() {
//	    logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: os.Stdout})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    logger.Info("application started", slog.String("version", "1.0"))
//	}
package logging
