// Package testdb opens throwaway in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"testing"

	"github.com/holocron-dev/holocron/infrastructure/persistence"
	"github.com/holocron-dev/holocron/internal/database"
)

func open(t *testing.T) database.Database {
	t.Helper()
	db, err := database.NewDatabase(context.Background(), "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// New returns a database with the full entity schema migrated. It is closed
// when the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	db := open(t)
	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// NewPlain returns a database with no schema at all, for tests that bring
// their own tables.
func NewPlain(t *testing.T) database.Database {
	t.Helper()
	return open(t)
}

// WithSchema returns a database prepared by executing the given SQL
// statements in order.
func WithSchema(t *testing.T, statements ...string) database.Database {
	t.Helper()
	db := open(t)
	ctx := context.Background()
	for _, stmt := range statements {
		if err := db.Session(ctx).Exec(stmt).Error; err != nil {
			t.Fatalf("apply test schema: %v\n%s", err, stmt)
		}
	}
	return db
}
