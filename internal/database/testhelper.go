package database

import (
	"database/sql"
	"fmt"

	"github.com/mealtable/mealtable/internal/config"

	_ "modernc.org/sqlite"
)

// NewInMemory creates an in-memory database for testing purposes.
// It does not run migrations, schedule backups, or enable WAL mode.
func NewInMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &DB{
		DB:        sqlDB,
		path:      ":memory:",
		config:    &config.DatabaseConfig{},
		closeChan: make(chan struct{}),
	}, nil
}
