package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/swgrt/swgrt/internal/database"
	"github.com/swgrt/swgrt/internal/models"
)

// SQLiteGateway stores the document in two SQLite tables. Each save replaces
// both tables in one transaction; a position column keeps record order.
type SQLiteGateway struct {
	db *database.DB
}

// OpenSQLiteGateway opens (or creates) the database at path and applies
// pending migrations.
func OpenSQLiteGateway(ctx context.Context, path string) (*SQLiteGateway, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}

	g, err := NewSQLiteGateway(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return g, nil
}

// NewSQLiteGateway wraps an open database, applying pending migrations.
func NewSQLiteGateway(ctx context.Context, db *database.DB) (*SQLiteGateway, error) {
	migrator, err := database.NewMigrator(db)
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", err)
	}

	applied, err := migrator.MigrateUp(ctx)
	if err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if applied > 0 {
		slog.Info("database schema migrated", "path", db.Path(), "applied", applied)
	}

	return &SQLiteGateway{db: db}, nil
}

// Path returns the database file path.
func (g *SQLiteGateway) Path() string {
	return g.db.Path()
}

// Close closes the underlying database.
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

// Load reads both tables in position order. Any query failure yields the
// empty document; rows that cannot be decoded are skipped.
func (g *SQLiteGateway) Load(ctx context.Context) models.Document {
	resources, err := g.loadResources(ctx)
	if err != nil {
		slog.Warn("loading resources", "path", g.Path(), "error", err)
		return models.EmptyDocument()
	}

	inventory, err := g.loadInventory(ctx)
	if err != nil {
		slog.Warn("loading inventory", "path", g.Path(), "error", err)
		return models.EmptyDocument()
	}

	return models.Document{Resources: resources, Inventory: inventory}
}

func (g *SQLiteGateway) loadResources(ctx context.Context) ([]models.Resource, error) {
	rows, err := g.db.QueryContext(ctx, `
		SELECT id, name, planet, category, type, in_spawn, stats, timestamp_ms
		FROM resources ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying resources: %w", err)
	}
	defer rows.Close()

	out := []models.Resource{}
	for rows.Next() {
		var r models.Resource
		var inSpawn int
		var stats string
		var ts int64
		if err := rows.Scan(&r.ID, &r.Name, &r.Planet, &r.Category, &r.Type, &inSpawn, &stats, &ts); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		r.Stats = decodeStats(json.RawMessage(stats))
		r.InSpawn = inSpawn != 0
		r.Timestamp = models.TimestampFromMillis(ts)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (g *SQLiteGateway) loadInventory(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := g.db.QueryContext(ctx, `
		SELECT id, resource_name, quantity, timestamp_ms
		FROM inventory ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying inventory: %w", err)
	}
	defer rows.Close()

	out := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		var ts int64
		if err := rows.Scan(&item.ID, &item.ResourceName, &item.Quantity, &ts); err != nil {
			return nil, fmt.Errorf("scanning inventory item: %w", err)
		}
		item.Timestamp = models.TimestampFromMillis(ts)
		out = append(out, item)
	}
	return out, rows.Err()
}

// Save replaces the contents of both tables with doc.
func (g *SQLiteGateway) Save(ctx context.Context, doc models.Document) (SaveResult, error) {
	doc = doc.Normalize()

	err := g.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM resources"); err != nil {
			return fmt.Errorf("clearing resources: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM inventory"); err != nil {
			return fmt.Errorf("clearing inventory: %w", err)
		}

		for i, r := range doc.Resources {
			stats, err := json.Marshal(r.Stats)
			if err != nil {
				return fmt.Errorf("encoding stats for %s: %w", r.ID, err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO resources (position, id, name, planet, category, type, in_spawn, stats, timestamp_ms)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, i, r.ID, r.Name, string(r.Planet), string(r.Category), string(r.Type),
				boolToInt(r.InSpawn), string(stats), r.Timestamp.Millis())
			if err != nil {
				return fmt.Errorf("inserting resource %s: %w", r.ID, err)
			}
		}

		for i, item := range doc.Inventory {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO inventory (position, id, resource_name, quantity, timestamp_ms)
				VALUES (?, ?, ?, ?, ?)
			`, i, item.ID, item.ResourceName, item.Quantity, item.Timestamp.Millis())
			if err != nil {
				return fmt.Errorf("inserting inventory item %s: %w", item.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("saving to database", "path", g.Path(), "error", err)
		return SaveResult{}, err
	}

	return SaveResult{OK: true, Path: g.Path()}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
