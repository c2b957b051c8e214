package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/swgrt/swgrt/internal/models"
)

// FileGateway stores the document as a single JSON file.
type FileGateway struct {
	path string
}

// NewFileGateway returns a gateway for the file at path. A relative path is
// resolved against the working directory.
func NewFileGateway(path string) *FileGateway {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &FileGateway{path: path}
}

// Path returns the absolute file path.
func (g *FileGateway) Path() string {
	return g.path
}

// Load reads and decodes the file. A missing file is an empty document.
func (g *FileGateway) Load(ctx context.Context) models.Document {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("reading data file", "path", g.path, "error", err)
		}
		return models.EmptyDocument()
	}

	doc := DecodeDocument(data)
	slog.Debug("data file loaded",
		"path", g.path,
		"resources", len(doc.Resources),
		"inventory", len(doc.Inventory),
	)
	return doc
}

// Save overwrites the file with doc, creating the directory if needed.
func (g *FileGateway) Save(ctx context.Context, doc models.Document) (SaveResult, error) {
	if err := ctx.Err(); err != nil {
		return SaveResult{}, err
	}

	data, err := EncodeDocument(doc)
	if err != nil {
		return SaveResult{}, fmt.Errorf("encoding document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(g.path), 0750); err != nil {
		slog.Error("creating data directory", "path", g.path, "error", err)
		return SaveResult{}, fmt.Errorf("creating data directory: %w", err)
	}

	if err := os.WriteFile(g.path, data, 0600); err != nil {
		slog.Error("writing data file", "path", g.path, "error", err)
		return SaveResult{}, fmt.Errorf("writing data file: %w", err)
	}

	return SaveResult{OK: true, Path: g.path}, nil
}
