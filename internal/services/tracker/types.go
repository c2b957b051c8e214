package tracker

import "github.com/swgrt/swgrt/internal/models"

// ResourceInput carries the fields of a resource upsert. Nil fields are
// omitted: on update they keep the stored value, on create they take the
// default.
type ResourceInput struct {
	ID        string
	Name      *string
	Planet    *models.Planet
	Category  *models.Category
	Type      *models.ResourceType
	InSpawn   *bool
	Stats     models.Stats
	Timestamp *models.Timestamp
}

// InventoryInput carries the fields of an inventory upsert, with the same
// omission rules as ResourceInput.
type InventoryInput struct {
	ID           string
	ResourceName *string
	Quantity     *int64
	Timestamp    *models.Timestamp
}

// ResourceInputFrom returns an input that sets every field of r.
func ResourceInputFrom(r models.Resource) ResourceInput {
	stats := r.Stats.Clone()
	if stats == nil {
		stats = models.Stats{}
	}
	return ResourceInput{
		ID:        r.ID,
		Name:      &r.Name,
		Planet:    &r.Planet,
		Category:  &r.Category,
		Type:      &r.Type,
		InSpawn:   &r.InSpawn,
		Stats:     stats,
		Timestamp: &r.Timestamp,
	}
}

// Ptr returns a pointer to v, for building inputs inline.
func Ptr[T any](v T) *T {
	return &v
}
