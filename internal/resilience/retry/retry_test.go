package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mini-blog/internal/repository"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:    attempts,
		InitialDelay:   10 * time.Millisecond,
		MaxDelay:       100 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff_Success(t *testing.T) {
	attempts := 0
	fn := func() error {
		attempts++
		return nil
	}

	err := WithBackoff(context.Background(), fastConfig(3), fn)

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
}

func TestWithBackoff_SuccessAfterRetry(t *testing.T) {
	attempts := 0
	fn := func() error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("connect: %w", syscall.ECONNREFUSED)
		}
		return nil
	}

	err := WithBackoff(context.Background(), fastConfig(3), fn)

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestWithBackoff_MaxAttemptsExceeded(t *testing.T) {
	attempts := 0
	testErr := fmt.Errorf("open session: %w", repository.ErrUnavailable)
	fn := func() error {
		attempts++
		return testErr
	}

	err := WithBackoff(context.Background(), fastConfig(3), fn)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if !errors.Is(err, testErr) {
		t.Errorf("expected wrapped error to contain original error")
	}
}

func TestWithBackoff_NonRetryableError(t *testing.T) {
	attempts := 0
	testErr := errors.New("password authentication failed")
	fn := func() error {
		attempts++
		return testErr
	}

	err := WithBackoff(context.Background(), fastConfig(3), fn)

	if attempts != 1 {
		t.Errorf("expected 1 attempt (non-retryable), got %d", attempts)
	}
	if err != testErr {
		t.Errorf("expected same error, got %v", err)
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	cfg := fastConfig(5)
	cfg.InitialDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	fn := func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return syscall.ECONNRESET
	}

	err := WithBackoff(ctx, cfg, fn)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled error, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{name: "nil error", err: nil, retryable: false},
		{name: "context canceled", err: context.Canceled, retryable: false},
		{name: "context deadline exceeded", err: context.DeadlineExceeded, retryable: false},
		{name: "store unavailable", err: fmt.Errorf("ping: %w", repository.ErrUnavailable), retryable: true},
		{name: "net timeout", err: timeoutErr{}, retryable: true},
		{name: "dial error", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route")}, retryable: true},
		{name: "read error", err: &net.OpError{Op: "read", Net: "tcp", Err: errors.New("closed")}, retryable: false},
		{name: "ECONNREFUSED", err: syscall.ECONNREFUSED, retryable: true},
		{name: "ECONNRESET", err: syscall.ECONNRESET, retryable: true},
		{name: "ETIMEDOUT", err: syscall.ETIMEDOUT, retryable: true},
		{name: "ENETUNREACH", err: syscall.ENETUNREACH, retryable: true},
		{name: "generic error", err: errors.New("some error"), retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsRetryable(tt.err)
			if result != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", result, tt.retryable)
			}
		})
	}
}

func TestStoreConnectConfig(t *testing.T) {
	cfg := StoreConnectConfig()

	if cfg.MaxAttempts != 6 {
		t.Errorf("expected MaxAttempts=6, got %d", cfg.MaxAttempts)
	}
	if cfg.InitialDelay != 500*time.Millisecond {
		t.Errorf("expected InitialDelay=500ms, got %v", cfg.InitialDelay)
	}
}

func TestConfig_Next(t *testing.T) {
	cfg := Config{Multiplier: 2, MaxDelay: 300 * time.Millisecond}

	assert.Equal(t, 200*time.Millisecond, cfg.next(100*time.Millisecond))
	assert.Equal(t, 300*time.Millisecond, cfg.next(200*time.Millisecond))
}

func TestAddJitter(t *testing.T) {
	duration := 100 * time.Millisecond

	results := make(map[time.Duration]bool)
	for i := 0; i < 10; i++ {
		result := addJitter(duration, 0.2)

		maxDuration := time.Duration(float64(duration) * 1.2)
		if result < duration || result > maxDuration {
			t.Errorf("expected result between %v and %v, got %v", duration, maxDuration, result)
		}
		results[result] = true
	}

	if len(results) < 2 {
		t.Error("expected jitter to produce varied results")
	}
}

func TestAddJitter_ZeroFraction(t *testing.T) {
	duration := 100 * time.Millisecond
	if got := addJitter(duration, 0.0); got != duration {
		t.Errorf("expected no jitter with fraction=0, got %v instead of %v", got, duration)
	}
}
