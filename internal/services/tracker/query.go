package tracker

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/swgrt/swgrt/internal/models"
)

// All is the wildcard value for planet and category filters.
const All = "All"

// SpawnFilter selects resources by spawn status.
type SpawnFilter string

const (
	SpawnAll       SpawnFilter = "All"
	SpawnActive    SpawnFilter = "Active"
	SpawnDespawned SpawnFilter = "Despawned"
)

// SpawnFilters lists the spawn filters in cycle order.
var SpawnFilters = []SpawnFilter{SpawnAll, SpawnActive, SpawnDespawned}

func (f SpawnFilter) matches(inSpawn bool) bool {
	switch f {
	case SpawnActive:
		return inSpawn
	case SpawnDespawned:
		return !inSpawn
	default:
		return true
	}
}

// TrackerFilter narrows the survey grid. Empty Planet, Category or Spawn
// values behave like All.
type TrackerFilter struct {
	Search   string
	Planet   models.Planet
	Spawn    SpawnFilter
	Category models.Category
}

// DefaultTrackerFilter returns a filter that matches every resource.
func DefaultTrackerFilter() TrackerFilter {
	return TrackerFilter{Planet: All, Spawn: SpawnAll, Category: All}
}

// Matches reports whether r passes every predicate of f.
func (f TrackerFilter) Matches(r models.Resource) bool {
	if !containsFold(r.Name, f.Search) {
		return false
	}
	if f.Planet != "" && f.Planet != All && r.Planet != f.Planet {
		return false
	}
	if !f.Spawn.matches(r.InSpawn) {
		return false
	}
	if f.Category != "" && f.Category != All && r.Category != f.Category {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

type sortField int

const (
	fieldTimestamp sortField = iota
	fieldLive
	fieldName
	fieldPlanet
	fieldCategory
	fieldType
	fieldQuantity
	fieldResourceName
	fieldAttribute
)

// SortKey identifies a sortable column. The zero value sorts by timestamp.
type SortKey struct {
	field sortField
	attr  models.Attribute
}

var (
	SortByTimestamp    = SortKey{field: fieldTimestamp}
	SortByLive         = SortKey{field: fieldLive}
	SortByName         = SortKey{field: fieldName}
	SortByPlanet       = SortKey{field: fieldPlanet}
	SortByCategory     = SortKey{field: fieldCategory}
	SortByType         = SortKey{field: fieldType}
	SortByQuantity     = SortKey{field: fieldQuantity}
	SortByResourceName = SortKey{field: fieldResourceName}
)

// SortByAttribute sorts by a quality attribute.
func SortByAttribute(a models.Attribute) SortKey {
	return SortKey{field: fieldAttribute, attr: a}
}

// Attribute returns the attribute of an attribute key.
func (k SortKey) Attribute() (models.Attribute, bool) {
	return k.attr, k.field == fieldAttribute
}

// String returns the record field name the key reads.
func (k SortKey) String() string {
	switch k.field {
	case fieldLive:
		return "inSpawn"
	case fieldName:
		return "name"
	case fieldPlanet:
		return "planet"
	case fieldCategory:
		return "category"
	case fieldType:
		return "type"
	case fieldQuantity:
		return "quantity"
	case fieldResourceName:
		return "resourceName"
	case fieldAttribute:
		return string(k.attr)
	default:
		return "timestamp"
	}
}

// SortConfig is a sort key plus direction.
type SortConfig struct {
	Key       SortKey
	Direction models.SortDirection
}

// DefaultTrackerSort orders the survey grid newest first.
func DefaultTrackerSort() SortConfig {
	return SortConfig{Key: SortByTimestamp, Direction: models.SortDesc}
}

// DefaultInventorySort orders the stockroom by quantity, largest first.
func DefaultInventorySort() SortConfig {
	return SortConfig{Key: SortByQuantity, Direction: models.SortDesc}
}

// Toggle flips direction for the current key or switches to key descending.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key {
		return SortConfig{Key: key, Direction: c.Direction.Flip()}
	}
	return SortConfig{Key: key, Direction: models.SortDesc}
}

// sortValue is a comparable cell value. Numeric values compare numerically;
// anything else compares as a string in byte order.
type sortValue struct {
	num     int64
	str     string
	numeric bool
}

func numValue(n int64) sortValue { return sortValue{num: n, numeric: true} }
func strValue(s string) sortValue { return sortValue{str: s} }

func (v sortValue) text() string {
	if v.numeric {
		return strconv.FormatInt(v.num, 10)
	}
	return v.str
}

func compareValues(a, b sortValue) int {
	if a.numeric && b.numeric {
		return cmp.Compare(a.num, b.num)
	}
	return strings.Compare(a.text(), b.text())
}

func boolValue(b bool) sortValue {
	if b {
		return numValue(1)
	}
	return numValue(0)
}

// resourceValue reads key from r. The second result is false when r has no
// such field.
func resourceValue(r *models.Resource, key SortKey) (sortValue, bool) {
	switch key.field {
	case fieldLive:
		return boolValue(r.InSpawn), true
	case fieldName:
		return strValue(r.Name), true
	case fieldPlanet:
		return strValue(string(r.Planet)), true
	case fieldCategory:
		return strValue(string(r.Category)), true
	case fieldType:
		return strValue(string(r.Type)), true
	case fieldTimestamp:
		return numValue(r.Timestamp.Millis()), true
	case fieldAttribute:
		return numValue(int64(r.Stats.Value(key.attr))), true
	default:
		return sortValue{}, false
	}
}

func inventoryValue(item *models.InventoryItem, key SortKey) (sortValue, bool) {
	switch key.field {
	case fieldQuantity:
		return numValue(item.Quantity), true
	case fieldResourceName:
		return strValue(item.ResourceName), true
	case fieldTimestamp:
		return numValue(item.Timestamp.Millis()), true
	default:
		return sortValue{}, false
	}
}

func sortStable[T any](rows []T, dir models.SortDirection, value func(*T) sortValue) {
	slices.SortStableFunc(rows, func(a, b T) int {
		c := compareValues(value(&a), value(&b))
		if dir == models.SortAsc {
			return c
		}
		return -c
	})
}

// FilterTracker returns the resources matching filter, sorted by sortCfg.
// Equal keys keep their collection order.
func FilterTracker(resources []models.Resource, filter TrackerFilter, sortCfg SortConfig) []models.Resource {
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}

	sortStable(out, sortCfg.Direction, func(r *models.Resource) sortValue {
		v, ok := resourceValue(r, sortCfg.Key)
		if !ok {
			return strValue("")
		}
		return v
	})
	return out
}

// InventoryRow is an inventory item joined with the first resource of the
// same name. Resource is nil for orphaned items.
type InventoryRow struct {
	Item     models.InventoryItem
	Resource *models.Resource
}

// Resolved reports whether the row found its resource.
func (r InventoryRow) Resolved() bool {
	return r.Resource != nil
}

func (r *InventoryRow) sortValue(key SortKey) sortValue {
	if key.field == fieldAttribute {
		if r.Resource == nil {
			return numValue(0)
		}
		return numValue(int64(r.Resource.Stats.Value(key.attr)))
	}
	if v, ok := inventoryValue(&r.Item, key); ok {
		return v
	}
	if r.Resource != nil {
		if v, ok := resourceValue(r.Resource, key); ok {
			return v
		}
	}
	return strValue("")
}

// FilterInventory returns the items whose resource name contains search
// (case-insensitive), each joined with its resource and sorted by sortCfg.
func FilterInventory(items []models.InventoryItem, resources []models.Resource, search string, sortCfg SortConfig) []InventoryRow {
	byName := make(map[string]*models.Resource, len(resources))
	for i := range resources {
		if _, seen := byName[resources[i].Name]; !seen {
			byName[resources[i].Name] = &resources[i]
		}
	}

	rows := make([]InventoryRow, 0, len(items))
	for _, item := range items {
		if !containsFold(item.ResourceName, search) {
			continue
		}
		rows = append(rows, InventoryRow{Item: item, Resource: byName[item.ResourceName]})
	}

	sortStable(rows, sortCfg.Direction, func(r *InventoryRow) sortValue {
		return r.sortValue(sortCfg.Key)
	})
	return rows
}

// TotalQuantity sums the quantity of every item.
func TotalQuantity(items []models.InventoryItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Tonnage returns the total quantity in tonnes (kg / 1000).
func Tonnage(items []models.InventoryItem) float64 {
	return float64(TotalQuantity(items)) / 1000
}
