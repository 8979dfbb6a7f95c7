// Package testutil provides shared test helpers backed by a temporary SQLite database.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio/internal/db"
)

// SQLite returns a dialector factory for a fresh database file under t.TempDir().
func SQLite(t *testing.T) func() gorm.Dialector {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "portfolio-test.db") + "?_foreign_keys=on"
	return func() gorm.Dialector {
		return sqlite.Open(dsn)
	}
}

// Unreachable returns a dialector factory whose database file cannot be created.
func Unreachable() func() gorm.Dialector {
	return func() gorm.Dialector {
		return sqlite.Open(filepath.Join("/nonexistent", "missing-dir", "portfolio.db"))
	}
}

// Store returns a migrated store on a fresh SQLite database.
func Store(t *testing.T) *db.Store {
	t.Helper()
	s := db.NewStore(SQLite(t), time.Second, zap.NewNop(),
		db.WithOnConnect(func(_ context.Context, gdb *gorm.DB) error {
			return db.Migrate(gdb)
		}),
	)
	if _, err := s.DB(context.Background()); err != nil {
		t.Fatalf("connect test store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// UnreachableStore returns a store that always reports the database as unavailable.
func UnreachableStore(t *testing.T) *db.Store {
	t.Helper()
	return db.NewStore(Unreachable(), time.Second, zap.NewNop(), db.WithRetryInterval(0))
}
