// Package testutil provides shared helpers for package tests.
package testutil

import (
	"testing"

	"github.com/mealtable/mealtable/internal/database"
	"github.com/mealtable/mealtable/internal/store"
)

// NewStore creates an in-memory Store with the kv_store schema applied,
// closed automatically when the test finishes.
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("creating in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`)
	if err != nil {
		t.Fatalf("creating kv_store table: %v", err)
	}

	return store.New(db)
}
