package stockroom

import (
	"strconv"
	"strings"

	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/tui/components"
)

// FormMode selects which inventory fields the form edits.
type FormMode int

const (
	// FormModeAdd logs a new stock entry: resource name and quantity.
	FormModeAdd FormMode = iota
	// FormModeEditQuantity changes the quantity of an existing entry.
	FormModeEditQuantity
)

// InventoryForm collects an inventory entry.
type InventoryForm struct {
	form *components.Form
	mode FormMode
	item models.InventoryItem

	name     *components.Input
	quantity *components.Input
}

// NewInventoryForm creates an add form. Resource names complete from
// suggestions with ctrl+f.
func NewInventoryForm(suggestions []string) *InventoryForm {
	f := &InventoryForm{
		form:     components.NewForm("LOG STOCK"),
		mode:     FormModeAdd,
		name:     components.NewInput("Resource").SetRequired(true).SetWidth(24).SetMaxLength(64).SetSuggestions(suggestions),
		quantity: components.NewInput("Quantity (kg)").SetWidth(12).SetMaxLength(12).SetPlaceholder("0"),
	}
	f.form.AddField(f.name).AddField(f.quantity)
	return f
}

// NewQuantityForm creates a form that edits the quantity of item.
func NewQuantityForm(item models.InventoryItem) *InventoryForm {
	f := &InventoryForm{
		form:     components.NewForm("EDIT QUANTITY: " + item.ResourceName),
		mode:     FormModeEditQuantity,
		item:     item,
		quantity: components.NewInput("Quantity (kg)").SetWidth(12).SetMaxLength(12),
	}
	f.quantity.SetValue(strconv.FormatInt(item.Quantity, 10))
	f.form.AddField(f.quantity)
	return f
}

// Mode returns the form mode.
func (f *InventoryForm) Mode() FormMode {
	return f.mode
}

// SetPalette restyles the form.
func (f *InventoryForm) SetPalette(p components.Palette) {
	f.form.SetPalette(p)
}

// HandleKey handles a key press.
func (f *InventoryForm) HandleKey(key string) {
	f.form.HandleKey(key)
}

// IsSubmitted returns true if the form was submitted.
func (f *InventoryForm) IsSubmitted() bool {
	return f.form.IsSubmitted()
}

// IsCancelled returns true if the form was cancelled.
func (f *InventoryForm) IsCancelled() bool {
	return f.form.IsCancelled()
}

// ClearSubmitted reopens the form after a rejected submit.
func (f *InventoryForm) ClearSubmitted() {
	f.form.ClearSubmitted()
}

// Input returns the upsert described by the form. An add with an empty
// resource name reports false.
func (f *InventoryForm) Input() (tracker.InventoryInput, bool) {
	qty := parseQuantity(f.quantity.Value())

	if f.mode == FormModeEditQuantity {
		return tracker.InventoryInput{ID: f.item.ID, Quantity: tracker.Ptr(qty)}, true
	}

	name := strings.TrimSpace(f.name.Value())
	if name == "" {
		return tracker.InventoryInput{}, false
	}
	return tracker.InventoryInput{ResourceName: tracker.Ptr(name), Quantity: tracker.Ptr(qty)}, true
}

// parseQuantity reads an optional sign followed by leading digits, ignoring
// the rest. Input without leading digits is 0.
func parseQuantity(raw string) int64 {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Render renders the form.
func (f *InventoryForm) Render(width int) string {
	return f.form.RenderResponsive(width)
}
