package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/swgrt/swgrt/internal/models"
)

// ErrSaveFailed is returned by MemoryGateway.Save when failures are enabled.
var ErrSaveFailed = errors.New("save failed")

// MemoryGateway keeps the document in memory. It is used by tests and by
// callers that want a working store without touching disk.
type MemoryGateway struct {
	mu        sync.Mutex
	doc       models.Document
	saves     int
	failSaves bool
}

// NewMemoryGateway returns a gateway preloaded with doc.
func NewMemoryGateway(doc models.Document) *MemoryGateway {
	return &MemoryGateway{doc: doc.Normalize()}
}

// Path returns a fixed pseudo path.
func (g *MemoryGateway) Path() string {
	return "memory://" + DefaultFileName
}

// Load returns a copy of the held document.
func (g *MemoryGateway) Load(ctx context.Context) models.Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	return copyDocument(g.doc)
}

// Save replaces the held document unless failures are enabled.
func (g *MemoryGateway) Save(ctx context.Context, doc models.Document) (SaveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failSaves {
		return SaveResult{}, ErrSaveFailed
	}

	g.doc = copyDocument(doc.Normalize())
	g.saves++
	return SaveResult{OK: true, Path: g.Path()}, nil
}

// FailSaves makes subsequent saves fail (or succeed again).
func (g *MemoryGateway) FailSaves(fail bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failSaves = fail
}

// Saves returns the number of successful saves.
func (g *MemoryGateway) Saves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.saves
}

// Document returns a copy of the last saved document.
func (g *MemoryGateway) Document() models.Document {
	return g.Load(context.Background())
}

func copyDocument(doc models.Document) models.Document {
	out := models.Document{
		Resources: make([]models.Resource, len(doc.Resources)),
		Inventory: make([]models.InventoryItem, len(doc.Inventory)),
	}
	for i, r := range doc.Resources {
		r.Stats = r.Stats.Clone()
		out.Resources[i] = r
	}
	copy(out.Inventory, doc.Inventory)
	return out
}
