// Package store implements the persistent key/value store backing all
// MealTable state. Values are JSON documents keyed by well-known
// string keys in a single SQLite table.
//
// Storage failures are surfaced as boolean results rather than errors
// so callers can fall back to in-memory state and keep the app usable
// when the disk is unavailable. Failures are still logged.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/mealtable/mealtable/internal/database"
)

// Store is a JSON key/value store over the kv_store table.
type Store struct {
	db *database.DB
}

// New creates a Store over the given database.
func New(db *database.DB) *Store {
	return &Store{db: db}
}

// Get reads the raw JSON value for key. Returns false if the key is
// absent or the read failed.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv_store WHERE key = ?", key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		slog.Error("store read failed", "key", key, "error", err)
		return nil, false
	}
	return []byte(value), true
}

// Set writes the raw JSON value for key, replacing any existing value.
// Returns false if the write failed.
func (s *Store) Set(ctx context.Context, key string, value []byte) bool {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value))
	if err != nil {
		slog.Error("store write failed", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes the value for key. Removing an absent key is not an
// error. Returns false only if the delete itself failed.
func (s *Store) Remove(ctx context.Context, key string) bool {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM kv_store WHERE key = ?", key,
	)
	if err != nil {
		slog.Error("store delete failed", "key", key, "error", err)
		return false
	}
	return true
}

// Keys returns all keys with the given prefix, sorted.
func (s *Store) Keys(ctx context.Context, prefix string) []string {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM kv_store WHERE key LIKE ? ESCAPE '\' ORDER BY key`,
		escapeLike(prefix)+"%",
	)
	if err != nil {
		slog.Error("store key scan failed", "prefix", prefix, "error", err)
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			slog.Error("store key scan failed", "prefix", prefix, "error", err)
			return nil
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		slog.Error("store key scan failed", "prefix", prefix, "error", err)
		return nil
	}
	return keys
}

// GetJSON reads and unmarshals the value for key into v. Returns false
// if the key is absent, the read failed, or the stored document does
// not parse. A corrupt document is treated the same as a missing one
// so callers start from their zero state.
func GetJSON[T any](ctx context.Context, s *Store, key string, v *T) bool {
	data, ok := s.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("discarding unparseable store value", "key", key, "error", err)
		return false
	}
	return true
}

// SetJSON marshals v and writes it under key. Returns false if the
// value could not be encoded or the write failed.
func SetJSON[T any](ctx context.Context, s *Store, key string, v T) bool {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("store encode failed", "key", key, "error", err)
		return false
	}
	return s.Set(ctx, key, data)
}

// escapeLike escapes LIKE metacharacters in a literal prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
