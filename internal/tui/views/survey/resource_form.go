package survey

import (
	"strconv"
	"strings"

	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/tui/components"
)

// FormMode represents whether the form is adding or editing.
type FormMode int

const (
	FormModeAdd FormMode = iota
	FormModeEdit
)

const (
	spawnActive    = "ACTIVE"
	spawnDespawned = "DESPAWNED"
)

// ResourceForm collects the fields of a resource.
type ResourceForm struct {
	form *components.Form
	mode FormMode
	id   string

	name     *components.Input
	planet   *components.Select
	category *components.Select
	typ      *components.Select
	spawn    *components.Select
	stats    []*components.Input
}

// NewResourceForm creates a form prefilled with a new resource's defaults:
// the first planet, the first category and its first type, in spawn.
func NewResourceForm(mode FormMode) *ResourceForm {
	title := "LOG NEW RESOURCE"
	if mode == FormModeEdit {
		title = "EDIT RESOURCE"
	}

	planets := make([]string, len(models.Planets))
	for i, p := range models.Planets {
		planets[i] = string(p)
	}
	categories := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		categories[i] = string(c.Category)
	}

	f := &ResourceForm{
		form:     components.NewForm(title),
		mode:     mode,
		name:     components.NewInput("Name").SetRequired(true).SetWidth(24).SetMaxLength(64),
		planet:   components.NewSelect("Planet", planets).SetCompact(true),
		category: components.NewSelect("Category", categories).SetCompact(true),
		typ:      components.NewSelect("Type", nil),
		spawn:    components.NewSelect("In Spawn", []string{spawnActive, spawnDespawned}),
	}
	f.resetTypes()

	f.form.AddField(f.name).
		AddField(f.planet).
		AddField(f.category).
		AddField(f.typ).
		AddField(f.spawn)

	for _, a := range models.Attributes {
		in := components.NewInput(a.Label()).SetWidth(5).SetMaxLength(5).SetPlaceholder("-")
		f.stats = append(f.stats, in)
		f.form.AddField(in)
	}

	return f
}

func (f *ResourceForm) resetTypes() {
	types := models.TypesFor(models.Category(f.category.Value()))
	opts := make([]string, len(types))
	for i, t := range types {
		opts[i] = string(t)
	}
	f.typ.SetOptions(opts)
}

// SetResource fills the form from r for editing.
func (f *ResourceForm) SetResource(r models.Resource) {
	f.id = r.ID
	f.name.SetValue(r.Name)
	f.planet.SetValue(string(r.Planet))
	f.category.SetValue(string(r.Category))
	f.resetTypes()
	f.typ.SetValue(string(r.Type))
	if r.InSpawn {
		f.spawn.SetValue(spawnActive)
	} else {
		f.spawn.SetValue(spawnDespawned)
	}
	for i, a := range models.Attributes {
		if v, ok := r.Stats.Get(a); ok {
			f.stats[i].SetValue(strconv.Itoa(v))
		} else {
			f.stats[i].SetValue("")
		}
	}
}

// SetPalette restyles the form.
func (f *ResourceForm) SetPalette(p components.Palette) {
	f.form.SetPalette(p)
}

// Mode returns the form mode.
func (f *ResourceForm) Mode() FormMode {
	return f.mode
}

// HandleKey handles a key press. Changing the category resets the type to
// the first type of the new category.
func (f *ResourceForm) HandleKey(key string) {
	before := f.category.Value()
	f.form.HandleKey(key)
	if f.category.Value() != before {
		f.resetTypes()
	}
}

// IsSubmitted returns true if the form was submitted.
func (f *ResourceForm) IsSubmitted() bool {
	return f.form.IsSubmitted()
}

// IsCancelled returns true if the form was cancelled.
func (f *ResourceForm) IsCancelled() bool {
	return f.form.IsCancelled()
}

// ClearSubmitted reopens the form after a rejected submit.
func (f *ResourceForm) ClearSubmitted() {
	f.form.ClearSubmitted()
}

// Input returns the upsert input described by the form. It reports false
// when the name is empty; such a submit is ignored. On edit the stored
// timestamp is kept.
func (f *ResourceForm) Input() (tracker.ResourceInput, bool) {
	name := f.name.Value()
	if name == "" {
		return tracker.ResourceInput{}, false
	}

	stats := models.Stats{}
	for i, a := range models.Attributes {
		raw := strings.TrimSpace(f.stats[i].Value())
		if raw == "" {
			continue
		}
		stats[a] = parseStat(raw)
	}

	in := tracker.ResourceInput{
		ID:       f.id,
		Name:     tracker.Ptr(name),
		Planet:   tracker.Ptr(models.Planet(f.planet.Value())),
		Category: tracker.Ptr(models.Category(f.category.Value())),
		Type:     tracker.Ptr(models.ResourceType(f.typ.Value())),
		InSpawn:  tracker.Ptr(f.spawn.Value() == spawnActive),
		Stats:    stats,
	}
	return in, true
}

// parseStat reads an attribute value. Fractions are truncated and anything
// non-numeric is 0.
func parseStat(raw string) int {
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v)
	}
	return 0
}

// Render renders the form.
func (f *ResourceForm) Render(width int) string {
	return f.form.RenderResponsive(width)
}
