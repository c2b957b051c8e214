// Package models defines the records persisted by the resource tracker.
package models

// Document is the single persisted object holding both collections.
type Document struct {
	Resources []Resource      `json:"resources"`
	Inventory []InventoryItem `json:"inventory"`
}

// EmptyDocument returns a document with empty, non-nil collections.
func EmptyDocument() Document {
	return Document{
		Resources: []Resource{},
		Inventory: []InventoryItem{},
	}
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (d Document) Normalize() Document {
	if d.Resources == nil {
		d.Resources = []Resource{}
	}
	if d.Inventory == nil {
		d.Inventory = []InventoryItem{}
	}
	return d
}
