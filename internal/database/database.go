// Package database provides the SQLite connection used by the sqlite storage
// backend: WAL journaling, safety pragmas and an embedded schema migrator.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// ErrClosed is returned when a transaction is started on a closed DB.
var ErrClosed = errors.New("database is closed")

// connPragmas run on every new connection the driver opens.
var connPragmas = []string{
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"busy_timeout(5000)",
	"foreign_keys(ON)",
	"cache_size(-4000)",
}

// DB is a single-writer SQLite handle.
type DB struct {
	*sql.DB
	path   string
	closed atomic.Bool
}

// Open opens or creates the database file at path, creating its directory.
// A failed integrity check is logged and does not prevent opening.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := open(dsn(path), path)
	if err != nil {
		return nil, err
	}

	// Reach the file now so an unreadable path fails here, not on first save.
	if err := db.Ping(); err != nil {
		db.DB.Close()
		return nil, fmt.Errorf("connecting to %s: %w", path, err)
	}

	if err := db.CheckIntegrity(context.Background()); err != nil {
		slog.Warn("database integrity check failed", "path", path, "error", err)
	}
	return db, nil
}

// NewInMemory opens a private in-memory database, used by tests.
func NewInMemory() (*DB, error) {
	return open(memoryPath, memoryPath)
}

func open(source, path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", source)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: SQLite allows a single writer, and an in-memory
	// database exists only on the connection that created it.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &DB{DB: sqlDB, path: path}, nil
}

func dsn(path string) string {
	q := url.Values{}
	for _, p := range connPragmas {
		q.Add("_pragma", p)
	}
	q.Set("_txlock", "immediate")
	return "file:" + path + "?" + q.Encode()
}

// CheckIntegrity runs PRAGMA integrity_check and returns an error unless the
// database reports ok.
func (db *DB) CheckIntegrity(ctx context.Context) error {
	rows, err := db.QueryContext(ctx, "PRAGMA integrity_check")
	if err != nil {
		return fmt.Errorf("running integrity check: %w", err)
	}
	defer rows.Close()

	var problems []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return fmt.Errorf("scanning integrity result: %w", err)
		}
		if line != "ok" {
			problems = append(problems, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading integrity results: %w", err)
	}
	if len(problems) > 0 {
		return fmt.Errorf("integrity check failed: %v", problems)
	}
	return nil
}

// Checkpoint folds the WAL back into the main database file.
func (db *DB) Checkpoint(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("WAL checkpoint: %w", err)
	}
	return nil
}

// Close checkpoints a file database and closes it. Later calls are no-ops.
func (db *DB) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return nil
	}

	if db.path != memoryPath {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Checkpoint(ctx); err != nil {
			slog.Warn("final checkpoint failed", "path", db.path, "error", err)
		}
	}

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	slog.Debug("database closed", "path", db.path)
	return nil
}

// IsClosed reports whether Close has been called.
func (db *DB) IsClosed() bool {
	return db.closed.Load()
}

// Path returns the database file path, or ":memory:".
func (db *DB) Path() string {
	return db.path
}

// WithTransaction runs fn in a transaction, committing when it returns nil
// and rolling back otherwise or on panic.
func (db *DB) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	if db.IsClosed() {
		return ErrClosed
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && err != nil {
			err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	committed = true
	return nil
}
