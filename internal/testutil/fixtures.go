package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/swgrt/swgrt/internal/models"
)

// FixtureResource creates a test resource with sensible defaults.
func FixtureResource(overrides ...func(*models.Resource)) models.Resource {
	id := uuid.New().String()

	resource := models.Resource{
		ID:       id,
		Name:     "Res-" + id[:8],
		Planet:   "Corellia",
		Category: models.CategoryMineral,
		Type:     "Metal",
		InSpawn:  true,
		Stats: models.Stats{
			models.AttrOQ: 500,
			models.AttrCD: 300,
		},
		Timestamp: models.NewTimestamp(time.Now().UTC().Add(-time.Hour)),
	}

	for _, override := range overrides {
		override(&resource)
	}

	return resource
}

// FixtureDespawnedResource creates a resource that is no longer in spawn.
func FixtureDespawnedResource(overrides ...func(*models.Resource)) models.Resource {
	return FixtureResource(append([]func(*models.Resource){
		func(r *models.Resource) {
			r.InSpawn = false
		},
	}, overrides...)...)
}

// FixtureInventoryItem creates a test inventory item with sensible defaults.
func FixtureInventoryItem(resourceName string, overrides ...func(*models.InventoryItem)) models.InventoryItem {
	item := models.InventoryItem{
		ID:           uuid.New().String(),
		ResourceName: resourceName,
		Quantity:     1000,
		Timestamp:    models.NewTimestamp(time.Now().UTC()),
	}

	for _, override := range overrides {
		override(&item)
	}

	return item
}

// WithName overrides a resource name.
func WithName(name string) func(*models.Resource) {
	return func(r *models.Resource) {
		r.Name = name
	}
}

// WithStat sets a single attribute value.
func WithStat(a models.Attribute, v int) func(*models.Resource) {
	return func(r *models.Resource) {
		if r.Stats == nil {
			r.Stats = models.Stats{}
		}
		r.Stats[a] = v
	}
}

// WithQuantity overrides an item quantity.
func WithQuantity(q int64) func(*models.InventoryItem) {
	return func(i *models.InventoryItem) {
		i.Quantity = q
	}
}
