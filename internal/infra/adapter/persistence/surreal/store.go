// Package surreal stores documents in SurrealDB. Every session dials its own
// connection, selects the namespace and database, and closes it on release.
package surreal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/infra/adapter/persistence"
	"mini-blog/internal/observability/metrics"
	"mini-blog/internal/repository"
)

const backend = "surrealdb"

// Config holds the connection settings.
type Config struct {
	URL       string // ws://host:8000 or http://host:8000; SurrealDB 1.x and 2.x servers
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Store dials a fresh SurrealDB connection for every session.
type Store struct {
	cfg Config
}

func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) dial(ctx context.Context) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, s.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if s.cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: s.cfg.Username,
			Password: s.cfg.Password,
		}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("sign in: %w", err)
		}
	}

	if err := db.Use(ctx, s.cfg.Namespace, s.cfg.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("use %s/%s: %w", s.cfg.Namespace, s.cfg.Database, err)
	}
	return db, nil
}

// Open implements repository.Store.
func (s *Store) Open(ctx context.Context) (repository.Session, error) {
	db, err := s.dial(ctx)
	if err != nil {
		metrics.RecordSessionError(backend, "open")
		return nil, err
	}
	metrics.SessionOpened(backend)
	return &session{db: db}, nil
}

// Ping dials, runs a trivial query and disconnects.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(context.WithoutCancel(ctx)) }()

	if _, err := surrealdb.Query[bool](ctx, db, "RETURN true", nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

type session struct {
	db       *surrealdb.DB
	once     sync.Once
	closeErr error
}

func (s *session) Categories() repository.Collection[entity.Category] {
	return &collection[entity.Category]{db: s.db, table: repository.CategoriesCollection}
}

func (s *session) Authors() repository.Collection[entity.Author] {
	return &collection[entity.Author]{db: s.db, table: repository.AuthorsCollection}
}

func (s *session) Articles() repository.Collection[entity.Article] {
	return &collection[entity.Article]{db: s.db, table: repository.ArticlesCollection}
}

func (s *session) Close(ctx context.Context) error {
	s.once.Do(func() {
		metrics.SessionClosed(backend)
		if err := s.db.Close(ctx); err != nil {
			metrics.RecordSessionError(backend, "close")
			s.closeErr = fmt.Errorf("close connection: %w", err)
		}
	})
	return s.closeErr
}

// recordRef decodes just the record id of a returned row.
type recordRef struct {
	ID *models.RecordID `json:"id,omitempty"`
}

const (
	getQuery    = `SELECT * FROM type::thing($tb, $id)`
	// Targeting the table with a WHERE on id keeps a missing record missing.
	// UPDATE on a record id upserts on SurrealDB 1.x servers.
	updateQuery = `UPDATE type::table($tb) MERGE $doc WHERE id = type::thing($tb, $id) RETURN id`
	deleteQuery = `DELETE type::thing($tb, $id) RETURN BEFORE`
)

type collection[T repository.Document] struct {
	db    *surrealdb.DB
	table string
}

func (c *collection[T]) vars(id entity.ID) map[string]any {
	return map[string]any{"tb": c.table, "id": id.String()}
}

func (c *collection[T]) Insert(ctx context.Context, doc *T) (entity.ID, error) {
	var id entity.ID
	err := persistence.Observe(ctx, backend, c.table, "insert", func(ctx context.Context) error {
		created, err := surrealdb.Create[recordRef](ctx, c.db, models.Table(c.table), doc)
		if err != nil {
			return err
		}
		if created == nil {
			return errors.New("create returned no record")
		}
		id, err = recordKey(created.ID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("Insert %s: %w", c.table, err)
	}
	return id, nil
}

func (c *collection[T]) Get(ctx context.Context, id entity.ID) (*T, error) {
	var out *T
	err := persistence.Observe(ctx, backend, c.table, "get", func(ctx context.Context) error {
		res, err := surrealdb.Query[[]T](ctx, c.db, getQuery, c.vars(id))
		if err != nil {
			return err
		}
		if rows := firstResult(res); len(rows) > 0 {
			out = &rows[0]
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Get %s: %w", c.table, err)
	}
	return out, nil
}

func (c *collection[T]) Update(ctx context.Context, id entity.ID, doc *T) (bool, error) {
	var matched bool
	err := persistence.Observe(ctx, backend, c.table, "update", func(ctx context.Context) error {
		vars := c.vars(id)
		vars["doc"] = doc
		res, err := surrealdb.Query[[]recordRef](ctx, c.db, updateQuery, vars)
		if err != nil {
			return err
		}
		matched = len(firstResult(res)) > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("Update %s: %w", c.table, err)
	}
	return matched, nil
}

func (c *collection[T]) Delete(ctx context.Context, id entity.ID) (bool, error) {
	var deleted bool
	err := persistence.Observe(ctx, backend, c.table, "delete", func(ctx context.Context) error {
		res, err := surrealdb.Query[[]recordRef](ctx, c.db, deleteQuery, c.vars(id))
		if err != nil {
			return err
		}
		deleted = len(firstResult(res)) > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("Delete %s: %w", c.table, err)
	}
	return deleted, nil
}

// firstResult returns the rows of the first statement's result.
func firstResult[T any](res *[]surrealdb.QueryResult[[]T]) []T {
	if res == nil || len(*res) == 0 {
		return nil
	}
	return (*res)[0].Result
}

// recordKey converts a SurrealDB record id into an entity.ID. Only string
// keys are produced by this package.
func recordKey(rid *models.RecordID) (entity.ID, error) {
	if rid == nil {
		return "", errors.New("record has no id")
	}
	key, ok := rid.ID.(string)
	if !ok {
		return "", fmt.Errorf("unexpected record key type %T", rid.ID)
	}
	return entity.ParseID(key)
}
