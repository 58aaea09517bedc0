// Package database provides GORM connection management, a generic
// repository over option-based queries, and transaction helpers.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ErrUnsupportedDriver indicates the database URL names no known backend.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Database wraps a GORM connection. The zero value is not usable; open one
// with NewDatabase or rebind a transaction with FromSession.
type Database struct {
	db *gorm.DB
}

// NewDatabase opens a connection from a URL and verifies it with a ping.
// Accepted forms are sqlite:///path/to/file.db (":memory:" works as a path)
// and postgres:// or postgresql:// DSNs. TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey on both
// backends.
func NewDatabase(ctx context.Context, url string) (Database, error) {
	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(url, "sqlite:///"):
		dialector = sqlite.Open(strings.TrimPrefix(url, "sqlite:///"))
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		dialector = postgres.Open(url)
	default:
		return Database{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         slogGormLogger{},
		TranslateError: true,
	})
	if err != nil {
		return Database{}, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return Database{}, fmt.Errorf("get underlying db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Database{}, fmt.Errorf("ping database: %w", err)
	}

	return Database{db: db}, nil
}

// FromSession wraps an existing GORM session, typically a transaction, so
// stores can be rebound to it.
func FromSession(tx *gorm.DB) Database {
	return Database{db: tx}
}

// Session returns a GORM session carrying ctx.
func (d Database) Session(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

// Close closes the underlying connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get underlying db: %w", err)
	}
	return sqlDB.Close()
}
