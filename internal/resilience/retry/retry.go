// Package retry provides retry logic with exponential backoff and jitter.
// The server uses it to ride out a document store that is still starting up.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"syscall"
	"time"

	"mini-blog/internal/observability/logging"
	"mini-blog/internal/repository"
)

// Config shapes the backoff schedule.
type Config struct {
	MaxAttempts  int // including the first call
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// JitterFraction adds up to this fraction of each delay at random (0 to 1).
	JitterFraction float64
}

// StoreConnectConfig returns the configuration used while connecting to the
// store at start-up. Containers started together rarely have the database
// listening before the API, so it waits up to roughly half a minute.
func StoreConnectConfig() Config {
	return Config{
		MaxAttempts:    6,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       10 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// WithBackoff calls fn until it succeeds, returns an error IsRetryable
// rejects, or MaxAttempts calls have failed. Waits between attempts grow by
// Multiplier up to MaxDelay and stop early when ctx is done.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	logger := logging.FromContext(ctx)

	delay := cfg.InitialDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		switch {
		case err == nil:
			if attempt > 1 {
				logger.Info("operation succeeded after retry", slog.Int("attempt", attempt))
			}
			return nil
		case !IsRetryable(err):
			return err
		case attempt >= cfg.MaxAttempts:
			return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, err)
		}

		logger.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", delay),
			slog.Any("error", err))

		if err := sleep(ctx, delay); err != nil {
			return fmt.Errorf("retry aborted: %w", err)
		}
		delay = cfg.next(delay)
	}
}

// next returns the wait that follows d.
func (c Config) next(d time.Duration) time.Duration {
	d = time.Duration(float64(d) * c.Multiplier)
	if d > c.MaxDelay {
		d = c.MaxDelay
	}
	return addJitter(d, c.JitterFraction)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRetryable reports whether err looks like a store that is not reachable
// yet, as opposed to one that rejected the request.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Context errors are not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, repository.ErrUnavailable) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH)
}

// addJitter adds random jitter to a duration to prevent thundering herd.
func addJitter(duration time.Duration, jitterFraction float64) time.Duration {
	if jitterFraction <= 0 {
		return duration
	}
	if jitterFraction > 1.0 {
		jitterFraction = 1.0
	}
	// #nosec G404 -- Using math/rand is acceptable for jitter calculation.
	jitter := time.Duration(rand.Float64() * float64(duration) * jitterFraction)
	return duration + jitter
}
