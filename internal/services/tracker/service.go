// Package tracker holds the in-memory survey and stockroom collections and
// keeps them persisted through a storage gateway.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/storage"
	"github.com/swgrt/swgrt/internal/util"
)

// Service owns the resource and inventory collections. Every mutation
// updates memory first and then writes the full document.
type Service struct {
	gateway storage.Gateway
	now     func() time.Time
	newID   func() string

	mu        sync.RWMutex
	resources []models.Resource
	inventory []models.InventoryItem

	// saveMu serialises writes; each write snapshots the latest state.
	saveMu sync.Mutex
}

// NewService creates a tracker service. A nil gateway runs the service
// without persistence.
func NewService(gateway storage.Gateway) *Service {
	if gateway == nil {
		slog.Warn("no storage gateway available, records will not be saved")
	}
	return &Service{
		gateway:   gateway,
		now:       time.Now,
		newID:     util.NewID,
		resources: []models.Resource{},
		inventory: []models.InventoryItem{},
	}
}

// Persistent reports whether mutations are written to storage.
func (s *Service) Persistent() bool {
	return s.gateway != nil
}

// DataPath returns the storage location, or "" without a gateway.
func (s *Service) DataPath() string {
	if s.gateway == nil {
		return ""
	}
	return s.gateway.Path()
}

// Load replaces both collections with the stored document.
func (s *Service) Load(ctx context.Context) models.Document {
	doc := models.EmptyDocument()
	if s.gateway != nil {
		doc = s.gateway.Load(ctx).Normalize()
	}

	s.mu.Lock()
	s.resources = doc.Resources
	s.inventory = doc.Inventory
	s.mu.Unlock()

	slog.Info("records loaded",
		"path", s.DataPath(),
		"resources", len(doc.Resources),
		"inventory", len(doc.Inventory),
	)
	return s.Snapshot()
}

// Snapshot returns copies of both collections.
func (s *Service) Snapshot() models.Document {
	return models.Document{
		Resources: s.Resources(),
		Inventory: s.Inventory(),
	}
}

// Resources returns a copy of the resource collection.
func (s *Service) Resources() []models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resource, len(s.resources))
	for i, r := range s.resources {
		r.Stats = r.Stats.Clone()
		out[i] = r
	}
	return out
}

// Inventory returns a copy of the inventory collection.
func (s *Service) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.inventory)
}

// ResourceByName returns the first resource whose name equals name exactly.
func (s *Service) ResourceByName(name string) (models.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.resources {
		if r.Name == name {
			r.Stats = r.Stats.Clone()
			return r, true
		}
	}
	return models.Resource{}, false
}

// UpsertResource creates a resource or merges input into the resource with
// the same id. The returned resource reflects memory even when persisting
// fails.
func (s *Service) UpsertResource(ctx context.Context, input ResourceInput) (models.Resource, error) {
	r := s.ApplyResource(input)
	if err := s.Persist(ctx); err != nil {
		return r, fmt.Errorf("saving resource %q: %w", r.Name, err)
	}
	return r, nil
}

// ApplyResource is UpsertResource without the write. Call Persist to save.
func (s *Service) ApplyResource(input ResourceInput) models.Resource {
	id := input.ID
	if id == "" {
		id = s.newID()
	}

	s.mu.Lock()
	idx := slices.IndexFunc(s.resources, func(r models.Resource) bool { return r.ID == id })

	var r models.Resource
	if idx >= 0 {
		r = s.resources[idx]
	} else {
		r = models.Resource{
			ID:        id,
			InSpawn:   true,
			Stats:     models.Stats{},
			Timestamp: models.NewTimestamp(s.now()),
		}
	}
	applyResourceInput(&r, input)

	next := slices.Clone(s.resources)
	if idx >= 0 {
		next[idx] = r
	} else {
		next = append(next, r)
	}
	s.resources = next
	s.mu.Unlock()

	r.Stats = r.Stats.Clone()
	return r
}

func applyResourceInput(r *models.Resource, in ResourceInput) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Planet != nil {
		r.Planet = *in.Planet
	}
	if in.Category != nil {
		r.Category = *in.Category
	}
	if in.Type != nil {
		r.Type = *in.Type
	}
	if in.InSpawn != nil {
		r.InSpawn = *in.InSpawn
	}
	if in.Stats != nil {
		r.Stats = in.Stats.Clone()
	}
	if in.Timestamp != nil {
		r.Timestamp = *in.Timestamp
	}
}

// UpsertInventoryItem creates an inventory item or merges input into the
// item with the same id.
func (s *Service) UpsertInventoryItem(ctx context.Context, input InventoryInput) (models.InventoryItem, error) {
	item := s.ApplyInventoryItem(input)
	if err := s.Persist(ctx); err != nil {
		return item, fmt.Errorf("saving inventory item %q: %w", item.ResourceName, err)
	}
	return item, nil
}

// ApplyInventoryItem is UpsertInventoryItem without the write.
func (s *Service) ApplyInventoryItem(input InventoryInput) models.InventoryItem {
	id := input.ID
	if id == "" {
		id = s.newID()
	}

	s.mu.Lock()
	idx := slices.IndexFunc(s.inventory, func(i models.InventoryItem) bool { return i.ID == id })

	var item models.InventoryItem
	if idx >= 0 {
		item = s.inventory[idx]
	} else {
		item = models.InventoryItem{
			ID:        id,
			Timestamp: models.NewTimestamp(s.now()),
		}
	}
	if input.ResourceName != nil {
		item.ResourceName = *input.ResourceName
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Timestamp != nil {
		item.Timestamp = *input.Timestamp
	}

	next := slices.Clone(s.inventory)
	if idx >= 0 {
		next[idx] = item
	} else {
		next = append(next, item)
	}
	s.inventory = next
	s.mu.Unlock()
	return item
}

// DeleteResource removes every resource with the given id. Inventory rows
// naming the resource are kept.
func (s *Service) DeleteResource(ctx context.Context, id string) error {
	s.RemoveResource(id)
	if err := s.Persist(ctx); err != nil {
		return fmt.Errorf("deleting resource %s: %w", id, err)
	}
	return nil
}

// DeleteInventoryItem removes every inventory item with the given id.
func (s *Service) DeleteInventoryItem(ctx context.Context, id string) error {
	s.RemoveInventoryItem(id)
	if err := s.Persist(ctx); err != nil {
		return fmt.Errorf("deleting inventory item %s: %w", id, err)
	}
	return nil
}

// RemoveResource drops resources with the given id from memory only.
func (s *Service) RemoveResource(id string) {
	s.mu.Lock()
	s.resources = slices.DeleteFunc(slices.Clone(s.resources), func(r models.Resource) bool { return r.ID == id })
	s.mu.Unlock()
}

// RemoveInventoryItem drops inventory items with the given id from memory
// only.
func (s *Service) RemoveInventoryItem(id string) {
	s.mu.Lock()
	s.inventory = slices.DeleteFunc(slices.Clone(s.inventory), func(i models.InventoryItem) bool { return i.ID == id })
	s.mu.Unlock()
}

// ToggleSpawn inverts the spawn status of the resource with the given id.
// It reports false when no such resource exists.
func (s *Service) ToggleSpawn(ctx context.Context, id string) (models.Resource, bool, error) {
	r, ok := s.ApplyToggleSpawn(id)
	if !ok {
		return r, false, nil
	}
	if err := s.Persist(ctx); err != nil {
		return r, true, fmt.Errorf("saving resource %q: %w", r.Name, err)
	}
	return r, true, nil
}

// ApplyToggleSpawn is ToggleSpawn without the write.
func (s *Service) ApplyToggleSpawn(id string) (models.Resource, bool) {
	s.mu.RLock()
	idx := slices.IndexFunc(s.resources, func(r models.Resource) bool { return r.ID == id })
	var current models.Resource
	if idx >= 0 {
		current = s.resources[idx]
	}
	s.mu.RUnlock()

	if idx < 0 {
		return models.Resource{}, false
	}

	input := ResourceInputFrom(current)
	input.InSpawn = Ptr(!current.InSpawn)
	return s.ApplyResource(input), true
}

// Persist writes both collections as they are now. Without a gateway it does
// nothing.
func (s *Service) Persist(ctx context.Context) error {
	if s.gateway == nil {
		return nil
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	doc := s.Snapshot()
	res, err := s.gateway.Save(ctx, doc)
	if err != nil {
		slog.Error("persisting records", "path", s.gateway.Path(), "error", err)
		return err
	}

	slog.Debug("records saved",
		"path", res.Path,
		"resources", len(doc.Resources),
		"inventory", len(doc.Inventory),
	)
	return nil
}
