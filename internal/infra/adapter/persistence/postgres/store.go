// Package postgres stores documents as JSONB rows, one table per collection.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/infra/adapter/persistence"
	"mini-blog/internal/observability/metrics"
	"mini-blog/internal/repository"
)

const backend = "postgres"

// Store hands out one pooled connection per session.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open takes a dedicated connection from the pool.
func (s *Store) Open(ctx context.Context) (repository.Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		metrics.RecordSessionError(backend, "open")
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	metrics.SessionOpened(backend)
	return &session{conn: conn}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type session struct {
	conn *sql.Conn
	// mu serialises statements on conn. A result set keeps the connection
	// busy until it is scanned, and collections of one session are used
	// concurrently by the reference check.
	mu       sync.Mutex
	once     sync.Once
	closeErr error
}

func (s *session) Categories() repository.Collection[entity.Category] {
	return newCollection[entity.Category](s.conn, &s.mu, repository.CategoriesCollection)
}

func (s *session) Authors() repository.Collection[entity.Author] {
	return newCollection[entity.Author](s.conn, &s.mu, repository.AuthorsCollection)
}

func (s *session) Articles() repository.Collection[entity.Article] {
	return newCollection[entity.Article](s.conn, &s.mu, repository.ArticlesCollection)
}

// Close returns the connection to the pool.
func (s *session) Close(_ context.Context) error {
	s.once.Do(func() {
		metrics.SessionClosed(backend)
		if err := s.conn.Close(); err != nil {
			metrics.RecordSessionError(backend, "close")
			s.closeErr = fmt.Errorf("release connection: %w", err)
		}
	})
	return s.closeErr
}

type collection[T repository.Document] struct {
	conn  *sql.Conn
	mu    *sync.Mutex
	table string

	insertQuery string
	getQuery    string
	updateQuery string
	deleteQuery string
}

// newCollection builds the statements for table. Table names only ever come
// from the repository collection constants.
func newCollection[T repository.Document](conn *sql.Conn, mu *sync.Mutex, table string) *collection[T] {
	return &collection[T]{
		conn:        conn,
		mu:          mu,
		table:       table,
		insertQuery: fmt.Sprintf(`INSERT INTO %s (doc) VALUES ($1::jsonb) RETURNING id`, table),
		getQuery:    fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1 LIMIT 1`, table),
		updateQuery: fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1`, table),
		deleteQuery: fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table),
	}
}

func (c *collection[T]) Insert(ctx context.Context, doc *T) (entity.ID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var id string
	err := persistence.Observe(ctx, backend, c.table, "insert", func(ctx context.Context) error {
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return c.conn.QueryRowContext(ctx, c.insertQuery, string(raw)).Scan(&id)
	})
	if err != nil {
		return "", fmt.Errorf("Insert %s: %w", c.table, err)
	}
	return entity.ID(id), nil
}

func (c *collection[T]) Get(ctx context.Context, id entity.ID) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out *T
	err := persistence.Observe(ctx, backend, c.table, "get", func(ctx context.Context) error {
		var raw []byte
		err := c.conn.QueryRowContext(ctx, c.getQuery, id.String()).Scan(&raw)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		out = &doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Get %s: %w", c.table, err)
	}
	return out, nil
}

func (c *collection[T]) Update(ctx context.Context, id entity.ID, doc *T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	err := persistence.Observe(ctx, backend, c.table, "update", func(ctx context.Context) error {
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		res, err := c.conn.ExecContext(ctx, c.updateQuery, id.String(), string(raw))
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("Update %s: %w", c.table, err)
	}
	return n > 0, nil
}

func (c *collection[T]) Delete(ctx context.Context, id entity.ID) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	err := persistence.Observe(ctx, backend, c.table, "delete", func(ctx context.Context) error {
		res, err := c.conn.ExecContext(ctx, c.deleteQuery, id.String())
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("Delete %s: %w", c.table, err)
	}
	return n > 0, nil
}
