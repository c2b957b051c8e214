package database

import (
	"cmp"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// Migration is one versioned schema change, loaded from a file named
// NNN_description.sql.
type Migration struct {
	Version     int
	Description string
	UpSQL       string
}

// Migrator applies the embedded schema migrations in version order.
type Migrator struct {
	db         *DB
	migrations []Migration
}

// NewMigrator loads the embedded migrations and ensures the bookkeeping
// table exists.
func NewMigrator(db *DB) (*Migrator, error) {
	migrations, err := loadMigrations(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		applied_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("creating migrations table: %w", err)
	}
	return &Migrator{db: db, migrations: migrations}, nil
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	names, err := fs.Glob(fsys, dir+"/*.sql")
	if err != nil {
		return nil, err
	}

	var out []Migration
	for _, name := range names {
		base := strings.TrimSuffix(name[len(dir)+1:], ".sql")
		num, desc, ok := strings.Cut(base, "_")
		version, convErr := strconv.Atoi(num)
		if !ok || len(num) != 3 || convErr != nil {
			slog.Warn("skipping invalid migration filename", "name", name)
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", name, err)
		}
		out = append(out, Migration{
			Version:     version,
			Description: strings.ReplaceAll(desc, "_", " "),
			UpSQL:       parseMigration(string(content)),
		})
	}

	slices.SortFunc(out, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	return out, nil
}

// parseMigration returns the Up section of a migration file. Files without
// markers are entirely Up.
func parseMigration(content string) string {
	content, _, _ = strings.Cut(content, downMarker)
	if _, up, found := strings.Cut(content, upMarker); found {
		content = up
	}
	return strings.TrimSpace(content)
}

// CurrentVersion returns the highest applied schema version, 0 when none.
func (m *Migrator) CurrentVersion(ctx context.Context) (int, error) {
	var version int
	row := m.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("querying current version: %w", err)
	}
	return version, nil
}

// PendingMigrations returns the migrations newer than the current version.
func (m *Migrator) PendingMigrations(ctx context.Context) ([]Migration, error) {
	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return nil, err
	}

	i, _ := slices.BinarySearchFunc(m.migrations, current+1, func(mig Migration, v int) int {
		return cmp.Compare(mig.Version, v)
	})
	return m.migrations[i:], nil
}

// MigrateUp applies every pending migration, each in its own transaction,
// and returns how many succeeded.
func (m *Migrator) MigrateUp(ctx context.Context) (int, error) {
	pending, err := m.PendingMigrations(ctx)
	if err != nil {
		return 0, err
	}

	for i, mig := range pending {
		slog.Debug("applying migration", "version", mig.Version, "description", mig.Description)
		if err := m.db.WithTransaction(ctx, func(tx *sql.Tx) error { return apply(ctx, tx, mig) }); err != nil {
			return i, fmt.Errorf("migration %d failed: %w", mig.Version, err)
		}
	}
	return len(pending), nil
}

func apply(ctx context.Context, tx *sql.Tx, mig Migration) error {
	for _, stmt := range splitStatements(mig.UpSQL) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing statement: %w\nSQL: %s", err, stmt)
		}
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		mig.Version, mig.Description)
	if err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return nil
}

// splitStatements splits SQL on semicolons outside quoted strings.
func splitStatements(script string) []string {
	var (
		out   []string
		start int
		quote rune
	)
	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	for i, ch := range script {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == ';':
			emit(script[start:i])
			start = i + 1
		}
	}
	emit(script[start:])
	return out
}
