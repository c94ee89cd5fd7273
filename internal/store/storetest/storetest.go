// Package storetest provides SQLite-backed store clients for tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MosaabBleik/menu-service/internal/store"
)

// schema mirrors the production menu table. SQLite's CURRENT_TIMESTAMP
// only has second precision, so created_at defaults to a millisecond
// reading of the database clock instead.
const schema = `CREATE TABLE menu (
    id          VARCHAR(36) PRIMARY KEY,
    name        TEXT        NOT NULL,
    description TEXT        NOT NULL,
    price       NUMERIC     NOT NULL,
    available   BOOLEAN     NOT NULL,
    created_at  TIMESTAMP   NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
)`

// Tick waits until the database clock has moved past the last insert, so
// the next insert gets a strictly later created_at.
func Tick() {
	time.Sleep(2 * time.Millisecond)
}

// OpenDB opens an empty in-memory SQLite database.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// New returns a GormClient over a fresh in-memory database holding an
// empty menu table.
func New(t *testing.T, opts ...store.Option) *store.GormClient {
	t.Helper()

	client := store.NewGormClient(OpenDB(t), opts...)
	if _, err := client.ExecTx(context.Background(), store.Statement{SQL: schema}); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return client
}
