package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"mini-blog/internal/config"
	"mini-blog/internal/infra/adapter/persistence/memory"
	"mini-blog/internal/infra/adapter/persistence/postgres"
	"mini-blog/internal/infra/adapter/persistence/sqlite"
	"mini-blog/internal/infra/adapter/persistence/surreal"
	"mini-blog/internal/infra/db"
	"mini-blog/internal/repository"
	"mini-blog/internal/resilience/circuitbreaker"
	"mini-blog/internal/resilience/retry"
)

// storeHandle is the store the handlers use plus what the process needs to
// release it on shutdown.
type storeHandle struct {
	repository.Store

	Kind string
	// Breaker is nil when the circuit breaker is disabled.
	Breaker *circuitbreaker.Store

	closeFn func() error
}

// Close releases the underlying connection pool, if any.
func (h *storeHandle) Close() error {
	if h.closeFn == nil {
		return nil
	}
	return h.closeFn()
}

// openStore connects to the configured backend, retrying while it is not
// reachable yet, and wraps it with the circuit breaker when enabled.
func openStore(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*storeHandle, error) {
	h := &storeHandle{Kind: cfg.Store.Kind}

	switch cfg.Store.Kind {
	case config.StoreSurrealDB:
		s := cfg.Store.SurrealDB
		store := surreal.NewStore(surreal.Config{
			URL:       s.URL,
			Namespace: s.Namespace,
			Database:  s.Database,
			Username:  s.Username,
			Password:  s.Password,
		})
		err := retry.WithBackoff(ctx, retry.StoreConnectConfig(), func() error {
			pingCtx, cancel := context.WithTimeout(ctx, cfg.Store.PingTimeout)
			defer cancel()
			return store.Ping(pingCtx)
		})
		if err != nil {
			return nil, fmt.Errorf("connect surrealdb: %w", err)
		}
		h.Store = store

	case config.StorePostgres:
		sqlDB, err := openSQL(ctx, db.DriverPostgres, cfg.Store.Postgres, cfg)
		if err != nil {
			return nil, err
		}
		h.Store = postgres.NewStore(sqlDB)
		h.closeFn = sqlDB.Close

	case config.StoreSQLite:
		sqlDB, err := openSQL(ctx, db.DriverSQLite, cfg.Store.SQLite, cfg)
		if err != nil {
			return nil, err
		}
		h.Store = sqlite.NewStore(sqlDB)
		h.closeFn = sqlDB.Close

	case config.StoreMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		h.Store = memory.NewStore()

	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Store.Kind)
	}

	if cfg.Breaker.Enabled && cfg.Store.Kind != config.StoreMemory {
		cbCfg := circuitbreaker.StoreConfig(cfg.Store.Kind)
		cbCfg.Timeout = cfg.Breaker.Timeout
		h.Breaker = circuitbreaker.NewStore(h.Store, cbCfg)
		h.Store = h.Breaker
	}

	logger.Info("document store ready",
		slog.String("store", cfg.Store.Kind),
		slog.Bool("circuit_breaker", h.Breaker != nil))
	return h, nil
}

// openSQL opens a pool for driver and creates the collection tables.
func openSQL(ctx context.Context, driver string, sc config.SQLConfig, cfg *config.Config) (*sql.DB, error) {
	pool := db.ConnectionConfig{
		MaxOpenConns:    sc.MaxOpenConns,
		MaxIdleConns:    sc.MaxIdleConns,
		ConnMaxLifetime: sc.ConnMaxLifetime,
		ConnMaxIdleTime: sc.ConnMaxIdleTime,
	}

	var sqlDB *sql.DB
	err := retry.WithBackoff(ctx, retry.StoreConnectConfig(), func() error {
		var err error
		sqlDB, err = db.Open(ctx, driver, sc.DSN, pool, cfg.Store.PingTimeout)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(ctx, sqlDB, driver); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}
