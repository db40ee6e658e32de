// Package circuitbreaker guards document store connections with
// github.com/sony/gobreaker so that a dead backend fails requests fast.
package circuitbreaker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"mini-blog/internal/observability/metrics"
)

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name labels log lines and the breaker state metric.
	Name string

	// MaxRequests is how many probes pass while half-open.
	MaxRequests uint32

	// Interval clears the closed-state counts; zero never clears them.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the breaker once
	// MinRequests calls have been counted. 1.0 means every call failed.
	FailureThreshold float64
	MinRequests      uint32
}

// StoreConfig returns configuration for guarding session acquisition.
// Opens after 5 consecutive connection failures and probes again after 30s.
func StoreConfig(backend string) Config {
	return Config{
		Name:             "store-" + backend,
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// CircuitBreaker is a named gobreaker.CircuitBreaker that reports state
// changes to the log and to metrics.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
}

// New builds a breaker from cfg. A cancelled caller context does not count
// as a failure: the client went away, the store did not.
func New(cfg Config) *CircuitBreaker {
	tripped := func(counts gobreaker.Counts) bool {
		if counts.Requests < cfg.MinRequests {
			return false
		}
		return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: tripped,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.SetBreakerState(name, int(to))
		},
	})
	metrics.SetBreakerState(cfg.Name, int(gobreaker.StateClosed))

	return &CircuitBreaker{breaker: cb}
}

// Execute runs fn unless the breaker is open, in which case it returns
// gobreaker.ErrOpenState (or ErrTooManyRequests while half-open).
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

func (cb *CircuitBreaker) Name() string {
	return cb.breaker.Name()
}
