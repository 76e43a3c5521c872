package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// RecoveryResult indicates the outcome of a recovery attempt.
type RecoveryResult int

const (
	// RecoveryNotNeeded means the database was healthy.
	RecoveryNotNeeded RecoveryResult = iota
	// RecoveredFromWAL means replaying the WAL restored the database.
	RecoveredFromWAL
	// RecoveredFromBackup means a backup file was restored.
	RecoveredFromBackup
	// RecoveryFailed means no recovery path succeeded.
	RecoveryFailed
)

// String returns a human-readable description of the result.
func (r RecoveryResult) String() string {
	switch r {
	case RecoveryNotNeeded:
		return "recovery not needed"
	case RecoveredFromWAL:
		return "recovered from WAL"
	case RecoveredFromBackup:
		return "recovered from backup"
	case RecoveryFailed:
		return "recovery failed"
	default:
		return "unknown"
	}
}

// RecoveryReport describes what happened during a recovery attempt.
type RecoveryReport struct {
	Result     RecoveryResult
	BackupUsed string
	Err        error
}

// AttemptRecovery checks the database file at dbPath and, if corrupt,
// tries to recover it. Recovery proceeds in phases:
//
//  1. Integrity check - if it passes, nothing to do.
//  2. WAL replay - open and checkpoint, then re-check.
//  3. Backup restore - replace the file with the newest backup.
//
// The corrupt file is preserved with a .corrupt suffix before any
// backup restore so data is never silently discarded.
func AttemptRecovery(ctx context.Context, dbPath, backupDir string) RecoveryReport {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		// Nothing to recover, a fresh database will be created
		return RecoveryReport{Result: RecoveryNotNeeded}
	}

	// Phase 1: integrity check
	if err := checkFileIntegrity(ctx, dbPath); err == nil {
		return RecoveryReport{Result: RecoveryNotNeeded}
	} else {
		slog.Warn("database failed integrity check", "path", dbPath, "error", err)
	}

	// Phase 2: WAL replay
	if err := attemptWALRecovery(ctx, dbPath); err == nil {
		if err := checkFileIntegrity(ctx, dbPath); err == nil {
			slog.Info("database recovered via WAL replay", "path", dbPath)
			return RecoveryReport{Result: RecoveredFromWAL}
		}
	} else {
		slog.Warn("WAL recovery attempt failed", "error", err)
	}

	// Phase 3: backup restore
	backup, err := newestBackup(backupDir)
	if err != nil {
		return RecoveryReport{
			Result: RecoveryFailed,
			Err:    fmt.Errorf("no usable backup: %w", err),
		}
	}

	if err := restoreFromBackup(dbPath, backup); err != nil {
		return RecoveryReport{
			Result: RecoveryFailed,
			Err:    fmt.Errorf("restoring backup %s: %w", backup, err),
		}
	}

	if err := checkFileIntegrity(ctx, dbPath); err != nil {
		return RecoveryReport{
			Result: RecoveryFailed,
			Err:    fmt.Errorf("restored backup is also corrupt: %w", err),
		}
	}

	slog.Info("database restored from backup", "backup", backup)
	return RecoveryReport{Result: RecoveredFromBackup, BackupUsed: backup}
}

// checkFileIntegrity opens the file read-only and runs an integrity check.
func checkFileIntegrity(ctx context.Context, dbPath string) error {
	connStr := fmt.Sprintf("file:%s?mode=ro", dbPath)
	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var result string
	if err := db.QueryRowContext(ctx, "PRAGMA integrity_check(1)").Scan(&result); err != nil {
		return fmt.Errorf("running integrity check: %w", err)
	}

	if result != "ok" {
		return fmt.Errorf("integrity check returned %q", result)
	}

	return nil
}

// attemptWALRecovery opens the database read-write so SQLite replays
// any pending WAL frames, then checkpoints and closes.
func attemptWALRecovery(ctx context.Context, dbPath string) error {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s", dbPath))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpointing WAL: %w", err)
	}

	return nil
}

// newestBackup returns the most recent backup file in backupDir.
func newestBackup(backupDir string) (string, error) {
	if backupDir == "" {
		return "", fmt.Errorf("backup directory not configured")
	}

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return "", fmt.Errorf("reading backup directory: %w", err)
	}

	var backups []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "mealtable-") && strings.HasSuffix(name, ".db") {
			backups = append(backups, filepath.Join(backupDir, name))
		}
	}

	if len(backups) == 0 {
		return "", fmt.Errorf("no backups found in %s", backupDir)
	}

	// Timestamped names sort chronologically
	sort.Strings(backups)
	return backups[len(backups)-1], nil
}

// restoreFromBackup moves the corrupt file aside and copies the backup
// into place.
func restoreFromBackup(dbPath, backupPath string) error {
	corruptPath := fmt.Sprintf("%s.corrupt-%s", dbPath, time.Now().Format("20060102-150405"))
	if err := os.Rename(dbPath, corruptPath); err != nil {
		return fmt.Errorf("preserving corrupt file: %w", err)
	}
	slog.Info("corrupt database preserved", "path", corruptPath)

	// Remove stale WAL and SHM files from the corrupt database
	os.Remove(dbPath + "-wal")
	os.Remove(dbPath + "-shm")

	if err := copyFile(backupPath, dbPath); err != nil {
		// Put the corrupt file back so state is at least unchanged
		os.Rename(corruptPath, dbPath)
		return fmt.Errorf("copying backup: %w", err)
	}

	return nil
}

// copyFile copies src to dst, syncing before close.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying data: %w", err)
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("syncing destination: %w", err)
	}

	return nil
}
