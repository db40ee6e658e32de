package postgres_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"mini-blog/internal/domain/entity"
	"mini-blog/internal/infra/adapter/persistence/postgres"
	artUC "mini-blog/internal/usecase/article"
)

/* ──────────────────────────────── busy connection driver ──────────────────────────────── */

// busyConnector hands out connections that behave like pgx: an open result
// set keeps the connection busy, and a statement issued meanwhile fails with
// driver.ErrBadConn.
type busyConnector struct {
	overlaps atomic.Int64
}

func (c *busyConnector) Connect(context.Context) (driver.Conn, error) {
	return &busyConn{owner: c}, nil
}

func (c *busyConnector) Driver() driver.Driver { return busyDriver{} }

type busyDriver struct{}

func (busyDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use sql.OpenDB")
}

type busyConn struct {
	owner *busyConnector
	busy  atomic.Bool
}

func (c *busyConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}
func (c *busyConn) Close() error              { return nil }
func (c *busyConn) Begin() (driver.Tx, error) { return nil, errors.New("tx not supported") }

func (c *busyConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if !c.busy.CompareAndSwap(false, true) {
		c.owner.overlaps.Add(1)
		return nil, driver.ErrBadConn
	}
	switch {
	case strings.HasPrefix(query, "SELECT doc FROM categories"):
		return &busyRows{conn: c, col: "doc", val: []byte(`{"name":"Go"}`)}, nil
	case strings.HasPrefix(query, "SELECT doc FROM authors"):
		return &busyRows{conn: c, col: "doc", val: []byte(`{"name":"Ann"}`)}, nil
	case strings.HasPrefix(query, "INSERT INTO"):
		return &busyRows{conn: c, col: "id", val: "new-id"}, nil
	default:
		c.busy.Store(false)
		return nil, errors.New("unexpected query: " + query)
	}
}

func (c *busyConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	if c.busy.Load() {
		c.owner.overlaps.Add(1)
		return nil, driver.ErrBadConn
	}
	return driver.RowsAffected(1), nil
}

type busyRows struct {
	conn *busyConn
	col  string
	val  driver.Value
	done bool
}

func (r *busyRows) Columns() []string { return []string{r.col} }

func (r *busyRows) Close() error {
	r.conn.busy.Store(false)
	return nil
}

func (r *busyRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	// Widen the window in which the connection is busy.
	time.Sleep(100 * time.Microsecond)
	r.done = true
	dest[0] = r.val
	return nil
}

func newBusyStore(t *testing.T) (*postgres.Store, *busyConnector) {
	t.Helper()
	connector := &busyConnector{}
	db := sql.OpenDB(connector)
	t.Cleanup(func() { _ = db.Close() })
	return postgres.NewStore(db), connector
}

/* ──────────────────────────────── tests ──────────────────────────────── */

func TestSession_ConcurrentGetsShareConnection(t *testing.T) {
	store, connector := newBusyStore(t)
	ctx := context.Background()

	sess, err := store.Open(ctx)
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	defer func() { _ = sess.Close(ctx) }()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			_, err := sess.Categories().Get(gctx, "c1")
			return err
		})
		g.Go(func() error {
			_, err := sess.Authors().Get(gctx, "a1")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Get err=%v", err)
	}
	if n := connector.overlaps.Load(); n != 0 {
		t.Fatalf("statements overlapped on one connection %d times", n)
	}
}

func TestArticleCreate_ConcurrentReferenceLookups(t *testing.T) {
	store, connector := newBusyStore(t)
	svc := artUC.Service{Store: store}

	var wg sync.WaitGroup
	errs := make(chan error, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), artUC.Input{
				Title: "Hello", Text: "World",
				CategoryID: entity.ID("c1"), AuthorID: entity.ID("a1"),
			})
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("Create err=%v", err)
	}
	if n := connector.overlaps.Load(); n != 0 {
		t.Fatalf("statements overlapped on one connection %d times", n)
	}
}
