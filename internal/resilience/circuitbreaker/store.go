package circuitbreaker

import (
	"context"
	"errors"
	"fmt"

	"github.com/sony/gobreaker"

	"mini-blog/internal/repository"
)

// Store guards session acquisition and pings of a repository.Store. Calls
// made through an already open session are not guarded: once a request holds
// a session it runs to completion.
type Store struct {
	next repository.Store
	cb   *CircuitBreaker
}

// NewStore wraps next with a breaker built from cfg.
func NewStore(next repository.Store, cfg Config) *Store {
	return &Store{next: next, cb: New(cfg)}
}

// Open implements repository.Store.
// Failures are wrapped with repository.ErrUnavailable.
func (s *Store) Open(ctx context.Context) (repository.Session, error) {
	res, err := s.cb.Execute(func() (interface{}, error) {
		return s.next.Open(ctx)
	})
	if err != nil {
		return nil, unavailable(err)
	}
	return res.(repository.Session), nil
}

// Ping implements repository.Store.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		return nil, s.next.Ping(ctx)
	})
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// State reports the breaker state for health checks.
func (s *Store) State() gobreaker.State {
	return s.cb.State()
}

func unavailable(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
}
