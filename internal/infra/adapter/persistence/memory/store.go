// Package memory implements the document store in process memory.
// Data does not survive a restart; it backs local development and tests.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/infra/adapter/persistence"
	"mini-blog/internal/observability/metrics"
	"mini-blog/internal/repository"
)

const backend = "memory"

// ErrSessionClosed is returned when a collection is used after its session
// has been closed.
var ErrSessionClosed = errors.New("memory: session closed")

// Store keeps every collection as a map of JSON documents.
type Store struct {
	mu   sync.RWMutex
	docs map[string]map[entity.ID][]byte
	open atomic.Int64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		docs: map[string]map[entity.ID][]byte{
			repository.CategoriesCollection: {},
			repository.AuthorsCollection:    {},
			repository.ArticlesCollection:   {},
		},
	}
}

// Open implements repository.Store.
func (s *Store) Open(ctx context.Context) (repository.Session, error) {
	if err := ctx.Err(); err != nil {
		metrics.RecordSessionError(backend, "open")
		return nil, err
	}
	s.open.Add(1)
	metrics.SessionOpened(backend)
	return &session{store: s}, nil
}

// Ping implements repository.Store.
func (s *Store) Ping(_ context.Context) error { return nil }

// OpenSessions reports how many sessions are currently open.
func (s *Store) OpenSessions() int64 { return s.open.Load() }

type session struct {
	store  *Store
	closed atomic.Bool
}

func (s *session) Categories() repository.Collection[entity.Category] {
	return &collection[entity.Category]{sess: s, name: repository.CategoriesCollection}
}

func (s *session) Authors() repository.Collection[entity.Author] {
	return &collection[entity.Author]{sess: s, name: repository.AuthorsCollection}
}

func (s *session) Articles() repository.Collection[entity.Article] {
	return &collection[entity.Article]{sess: s, name: repository.ArticlesCollection}
}

// Close releases the session. Closing twice is a no-op.
func (s *session) Close(_ context.Context) error {
	if s.closed.CompareAndSwap(false, true) {
		s.store.open.Add(-1)
		metrics.SessionClosed(backend)
	}
	return nil
}

type collection[T repository.Document] struct {
	sess *session
	name string
}

func (c *collection[T]) do(ctx context.Context, op string, fn func() error) error {
	return persistence.Observe(ctx, backend, c.name, op, func(context.Context) error {
		if c.sess.closed.Load() {
			return ErrSessionClosed
		}
		return fn()
	})
}

func (c *collection[T]) Insert(ctx context.Context, doc *T) (entity.ID, error) {
	var id entity.ID
	err := c.do(ctx, "insert", func() error {
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.name, err)
		}
		id = entity.ID(uuid.NewString())

		c.sess.store.mu.Lock()
		c.sess.store.docs[c.name][id] = raw
		c.sess.store.mu.Unlock()
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (c *collection[T]) Get(ctx context.Context, id entity.ID) (*T, error) {
	var out *T
	err := c.do(ctx, "get", func() error {
		c.sess.store.mu.RLock()
		raw, ok := c.sess.store.docs[c.name][id]
		c.sess.store.mu.RUnlock()
		if !ok {
			return nil
		}

		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode %s %s: %w", c.name, id, err)
		}
		out = &doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *collection[T]) Update(ctx context.Context, id entity.ID, doc *T) (bool, error) {
	var matched bool
	err := c.do(ctx, "update", func() error {
		patch, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.name, err)
		}

		c.sess.store.mu.Lock()
		defer c.sess.store.mu.Unlock()

		current, ok := c.sess.store.docs[c.name][id]
		if !ok {
			return nil
		}
		merged, err := mergeFields(current, patch)
		if err != nil {
			return fmt.Errorf("merge %s %s: %w", c.name, id, err)
		}
		c.sess.store.docs[c.name][id] = merged
		matched = true
		return nil
	})
	return matched, err
}

func (c *collection[T]) Delete(ctx context.Context, id entity.ID) (bool, error) {
	var deleted bool
	err := c.do(ctx, "delete", func() error {
		c.sess.store.mu.Lock()
		defer c.sess.store.mu.Unlock()

		if _, ok := c.sess.store.docs[c.name][id]; ok {
			delete(c.sess.store.docs[c.name], id)
			deleted = true
		}
		return nil
	})
	return deleted, err
}

// mergeFields overlays the top-level fields of patch onto current.
func mergeFields(current, patch []byte) ([]byte, error) {
	var base, overlay map[string]json.RawMessage
	if err := json.Unmarshal(current, &base); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return nil, err
	}
	for k, v := range overlay {
		base[k] = v
	}
	return json.Marshal(base)
}
