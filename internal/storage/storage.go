// Package storage persists the tracker document. The Gateway port is the only
// way the rest of the program reaches disk; adapters decide the format.
package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/swgrt/swgrt/internal/models"
)

// AppDirName is the per-user application data directory name.
const AppDirName = "swg-resource-tracker"

// DefaultFileName is the name of the JSON document inside AppDirName.
const DefaultFileName = "swg-resource-tracker.txt"

// Gateway loads and saves the whole document.
type Gateway interface {
	// Load returns the persisted document. It never fails: unreadable or
	// malformed storage yields the empty document.
	Load(ctx context.Context) models.Document

	// Save overwrites storage with doc.
	Save(ctx context.Context, doc models.Document) (SaveResult, error)

	// Path returns the absolute location of the backing store.
	Path() string
}

// SaveResult reports where a document was written.
type SaveResult struct {
	OK   bool
	Path string
}

// DefaultDir returns the per-user data directory for the tracker,
// falling back to the working directory when no user config dir exists.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		slog.Warn("user config directory unavailable, using working directory", "error", err)
		return AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// DecodeDocument parses data leniently. Anything that is not a JSON object
// yields the empty document; a field that is not an array yields an empty
// collection for that field; array elements that are not objects are skipped.
// Within a record, numbers are truncated to integers and numeric ids read as
// strings.
func DecodeDocument(data []byte) models.Document {
	doc := models.EmptyDocument()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		if len(data) > 0 {
			slog.Warn("stored document is not a JSON object, starting empty", "error", err)
		}
		return doc
	}

	doc.Resources = decodeArray(fields["resources"], "resources", decodeResource)
	doc.Inventory = decodeArray(fields["inventory"], "inventory", decodeInventoryItem)
	return doc
}

func decodeArray[T any](raw json.RawMessage, field string, decode func(record) T) []T {
	out := []T{}
	if len(raw) == 0 {
		return out
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		slog.Warn("stored field is not an array, ignoring", "field", field)
		return out
	}

	for i, elem := range elems {
		var rec record
		if err := json.Unmarshal(elem, &rec); err != nil || rec == nil {
			slog.Warn("skipping non-object record", "field", field, "index", i)
			continue
		}
		out = append(out, decode(rec))
	}
	return out
}

// EncodeDocument serialises doc as indented JSON with empty collections
// rendered as [].
func EncodeDocument(doc models.Document) ([]byte, error) {
	return json.MarshalIndent(doc.Normalize(), "", "  ")
}
