// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package store persists icon sets in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore is a SQLite-backed store for icon sets.
type SQLiteStore struct {
	db *sql.DB
}

// StoreConfig holds configuration for creating a SQLiteStore.
type StoreConfig struct {
	// Path is the file path for file-based SQLite.
	// If empty, an in-memory database is used.
	Path string

	// InitSchema controls whether to run schema initialization.
	// In-memory stores always get the schema.
	InitSchema bool
}

// NewSQLiteStore creates a new in-memory SQLite store with schema loaded.
func NewSQLiteStore(ctx context.Context) (*SQLiteStore, error) {
	return NewSQLiteStoreWithConfig(ctx, StoreConfig{InitSchema: true})
}

// NewSQLiteStoreWithConfig creates a SQLite store based on the provided configuration.
// For file-based mode the database file must already exist unless InitSchema is set.
func NewSQLiteStoreWithConfig(ctx context.Context, cfg StoreConfig) (*SQLiteStore, error) {
	var dsn string
	if cfg.Path == "" {
		// a private in-memory database lives only as long as its one connection
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	} else {
		if !cfg.InitSchema {
			if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
				return nil, fmt.Errorf("database file does not exist: %s (run export to create it)", cfg.Path)
			}
		}
		// modernc.org/sqlite applies repeated _pragma parameters to every pooled connection
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
			cfg.Path,
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &ErrDatabase{Op: "open", Err: err}
	}
	if cfg.Path == "" {
		db.SetMaxOpenConns(1)
	}

	if cfg.InitSchema || cfg.Path == "" {
		if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
			db.Close()
			return nil, &ErrDatabase{Op: "exec schema", Err: err}
		}
	}

	return &SQLiteStore{db: db}, nil
}

// CompactDatabase checkpoints the WAL and vacuums a database file so it can
// be shipped as a single file.
func CompactDatabase(ctx context.Context, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("database file does not exist: %s", path)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return &ErrDatabase{Op: "open", Err: err}
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return &ErrDatabase{Op: "checkpoint WAL", Err: err}
	}
	if _, err := db.ExecContext(ctx, "VACUUM"); err != nil {
		return &ErrDatabase{Op: "vacuum", Err: err}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
