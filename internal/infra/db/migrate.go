package db

import (
	"context"
	"database/sql"
	"fmt"

	"mini-blog/internal/repository"
)

var collections = []string{
	repository.CategoriesCollection,
	repository.AuthorsCollection,
	repository.ArticlesCollection,
}

// collectionDDL returns the CREATE TABLE statement for one document table.
func collectionDDL(driver, table string) (string, error) {
	switch driver {
	case DriverPostgres:
		return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id  TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
    doc JSONB NOT NULL
)`, table), nil
	case DriverSQLite:
		return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    id  TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(12)))),
    doc TEXT NOT NULL CHECK (json_valid(doc))
)`, table), nil
	default:
		return "", fmt.Errorf("migrate: unsupported driver %q", driver)
	}
}

// MigrateUp creates the document tables for every collection. It is safe to
// run on every start.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	for _, table := range collections {
		ddl, err := collectionDDL(driver, table)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("migrate %s: %w", table, err)
		}
	}
	return nil
}
