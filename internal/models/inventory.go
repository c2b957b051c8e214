package models

// InventoryItem is a quantity of a named resource held in stock. ResourceName
// is expected, but not required, to match a Resource name.
type InventoryItem struct {
	ID           string    `json:"id"`
	ResourceName string    `json:"resourceName"`
	Quantity     int64     `json:"quantity"`
	Timestamp    Timestamp `json:"timestamp"`
}
