package storage

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"

	"github.com/swgrt/swgrt/internal/models"
)

// record is one stored object, decoded field by field so that a single
// malformed field never costs the whole record.
type record map[string]json.RawMessage

func (r record) str(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	if !isNull(raw) {
		slog.Warn("ignoring non-string field", "field", key, "value", string(raw))
	}
	return ""
}

func (r record) boolean(key string) bool {
	raw, ok := r[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

// integer reads a JSON number, or a string holding one, truncated toward
// zero.
func (r record) integer(key string) int64 {
	raw, ok := r[key]
	if !ok {
		return 0
	}
	n, ok := number(raw)
	if !ok && !isNull(raw) {
		slog.Warn("ignoring non-numeric field", "field", key, "value", string(raw))
	}
	return n
}

func (r record) timestamp(key string) models.Timestamp {
	raw, ok := r[key]
	if !ok {
		return models.Timestamp{}
	}
	var ts models.Timestamp
	if err := ts.UnmarshalJSON(raw); err != nil {
		return models.TimestampFromMillis(r.integer(key))
	}
	return ts
}

func (r record) stats(key string) models.Stats {
	raw, ok := r[key]
	if !ok {
		return nil
	}
	return decodeStats(raw)
}

// decodeStats reads an attribute map. Values are truncated to integers;
// values that are not numbers are dropped. Unknown attribute codes are kept
// so they survive the next save.
func decodeStats(raw json.RawMessage) models.Stats {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil
	}

	stats := make(models.Stats, len(fields))
	for k, v := range fields {
		attr := models.Attribute(k)
		if !attr.IsValid() {
			slog.Debug("keeping unknown stat", "attribute", k)
		}
		n, ok := number(v)
		if !ok {
			slog.Warn("dropping non-numeric stat", "attribute", k, "value", string(v))
			continue
		}
		stats[attr] = int(n)
	}
	return stats
}

func decodeResource(r record) models.Resource {
	return models.Resource{
		ID:        r.str("id"),
		Name:      r.str("name"),
		Planet:    models.Planet(r.str("planet")),
		Category:  models.Category(r.str("category")),
		Type:      models.ResourceType(r.str("type")),
		InSpawn:   r.boolean("inSpawn"),
		Stats:     r.stats("stats"),
		Timestamp: r.timestamp("timestamp"),
	}
}

func decodeInventoryItem(r record) models.InventoryItem {
	return models.InventoryItem{
		ID:           r.str("id"),
		ResourceName: r.str("resourceName"),
		Quantity:     r.integer("quantity"),
		Timestamp:    r.timestamp("timestamp"),
	}
}

func number(raw json.RawMessage) (int64, bool) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
