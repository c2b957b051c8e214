// Package survey provides the survey grid views: the filtered resource table
// and the resource form.
package survey

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/tui/components"
	"github.com/swgrt/swgrt/internal/util"
)

// column pairs a table column with the sort key its header applies.
type column struct {
	components.Column
	key tracker.SortKey
}

const (
	colLive = iota
	colName
	colPlanet
	colType
	colFirstAttr
)

func gridColumns() []column {
	cols := []column{
		{components.Column{Title: "LIVE", Width: 4, Align: lipgloss.Center, Sortable: true, Priority: 9}, tracker.SortByLive},
		{components.Column{Title: "RESOURCE", Width: 14, Weight: 1, Sortable: true, Priority: 10}, tracker.SortByName},
		{components.Column{Title: "PLANET", Width: 10, Sortable: true, Priority: 7}, tracker.SortByPlanet},
		{components.Column{Title: "TYPE", Width: 12, Priority: 2}, tracker.SortKey{}},
	}
	for i, a := range models.Attributes {
		prio := 5
		if a == models.AttrOQ {
			prio = 8
		} else if i > 6 {
			prio = 4
		}
		cols = append(cols, column{
			components.Column{Title: a.Label(), Width: 4, Align: lipgloss.Right, Priority: prio, Sortable: true},
			tracker.SortByAttribute(a),
		})
	}
	return cols
}

// GridView displays the filtered and sorted survey grid.
type GridView struct {
	table     *components.Table
	columns   []column
	resources []models.Resource
	rows      []models.Resource
	filter    tracker.TrackerFilter
	sort      tracker.SortConfig
	cursor    int
	palette   components.Palette
	now       time.Time
	layout    string
}

// NewGridView creates an empty grid with the default filter and sort.
func NewGridView() *GridView {
	cols := gridColumns()
	tableCols := make([]components.Column, len(cols))
	for i, c := range cols {
		tableCols[i] = c.Column
	}

	table := components.NewTable(tableCols)
	table.SetSeparator(" ")
	table.SetVisibleRows(20)
	table.Focus(true)

	v := &GridView{
		table:   table,
		columns: cols,
		filter:  tracker.DefaultTrackerFilter(),
		sort:    tracker.DefaultTrackerSort(),
		cursor:  colName,
		layout:  util.DateTimeFormat,
	}
	v.SetPalette(components.DefaultPalette())
	v.refresh()
	return v
}

// SetPalette restyles the grid.
func (v *GridView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetPalette(p)
	dim := lipgloss.NewStyle().Foreground(p.Muted)
	high := lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	v.table.SetCellStyler(func(row, col int) (lipgloss.Style, bool) {
		if row < 0 || row >= len(v.rows) {
			return lipgloss.Style{}, false
		}
		r := v.rows[row]
		if !r.InSpawn {
			return dim, true
		}
		if col >= colFirstAttr {
			if r.Stats.Value(models.Attributes[col-colFirstAttr]) >= models.HighQuality {
				return high, true
			}
		}
		return lipgloss.Style{}, false
	})
}

// SetNow sets the reference time for relative timestamps.
func (v *GridView) SetNow(t time.Time) {
	v.now = t
}

// SetDateFormat sets the layout used for absolute timestamps.
func (v *GridView) SetDateFormat(layout string) {
	if layout != "" {
		v.layout = layout
	}
}

// SetVisibleRows sets how many table rows fit on screen.
func (v *GridView) SetVisibleRows(n int) {
	v.table.SetVisibleRows(n)
	v.updatePagination()
}

// SetData replaces the resources shown by the grid.
func (v *GridView) SetData(resources []models.Resource) {
	v.resources = resources
	v.refresh()
}

// Filter returns the active filter.
func (v *GridView) Filter() tracker.TrackerFilter {
	return v.filter
}

// Sort returns the active sort.
func (v *GridView) Sort() tracker.SortConfig {
	return v.sort
}

// Rows returns the resources currently shown, in display order.
func (v *GridView) Rows() []models.Resource {
	return v.rows
}

// Total returns the number of resources before filtering.
func (v *GridView) Total() int {
	return len(v.resources)
}

// SetSearch sets the name search.
func (v *GridView) SetSearch(s string) {
	v.filter.Search = s
	v.refresh()
}

// CyclePlanet advances the planet filter through All and every planet.
func (v *GridView) CyclePlanet() {
	opts := make([]models.Planet, 0, len(models.Planets)+1)
	opts = append(opts, tracker.All)
	opts = append(opts, models.Planets...)
	v.filter.Planet = next(opts, v.filter.Planet)
	v.refresh()
}

// CycleSpawn advances the spawn filter.
func (v *GridView) CycleSpawn() {
	v.filter.Spawn = next(tracker.SpawnFilters, v.filter.Spawn)
	v.refresh()
}

// CycleCategory advances the category filter through All and every category.
func (v *GridView) CycleCategory() {
	opts := []models.Category{tracker.All}
	for _, c := range models.Categories {
		opts = append(opts, c.Category)
	}
	v.filter.Category = next(opts, v.filter.Category)
	v.refresh()
}

// ResetFilters clears the search and every filter. The sort is kept.
func (v *GridView) ResetFilters() {
	v.filter = tracker.DefaultTrackerFilter()
	v.refresh()
}

func next[T comparable](opts []T, cur T) T {
	for i, o := range opts {
		if o == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// SortLeft moves the header cursor to the previous sortable column.
func (v *GridView) SortLeft() {
	for i := v.cursor - 1; i >= 0; i-- {
		if v.columns[i].Sortable {
			v.cursor = i
			break
		}
	}
	v.updateHeaders()
}

// SortRight moves the header cursor to the next sortable column.
func (v *GridView) SortRight() {
	for i := v.cursor + 1; i < len(v.columns); i++ {
		if v.columns[i].Sortable {
			v.cursor = i
			break
		}
	}
	v.updateHeaders()
}

// ApplySort sorts by the column under the header cursor, flipping the
// direction when it is already the sort column.
func (v *GridView) ApplySort() {
	v.sort = v.sort.Toggle(v.columns[v.cursor].key)
	v.refresh()
}

// MoveUp moves the selection up.
func (v *GridView) MoveUp() {
	v.table.MoveUp()
	v.updatePagination()
}

// MoveDown moves the selection down.
func (v *GridView) MoveDown() {
	v.table.MoveDown()
	v.updatePagination()
}

// PageUp moves the selection up one page.
func (v *GridView) PageUp() {
	v.table.PageUp()
	v.updatePagination()
}

// PageDown moves the selection down one page.
func (v *GridView) PageDown() {
	v.table.PageDown()
	v.updatePagination()
}

// GoToTop selects the first row.
func (v *GridView) GoToTop() {
	v.table.GoToTop()
	v.updatePagination()
}

// GoToBottom selects the last row.
func (v *GridView) GoToBottom() {
	v.table.GoToBottom()
	v.updatePagination()
}

// SelectedResource returns the resource under the selection.
func (v *GridView) SelectedResource() (models.Resource, bool) {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.rows) {
		return v.rows[idx], true
	}
	return models.Resource{}, false
}

func (v *GridView) refresh() {
	v.rows = tracker.FilterTracker(v.resources, v.filter, v.sort)

	rows := make([][]string, len(v.rows))
	for i, r := range v.rows {
		live := "OFF"
		if r.InSpawn {
			live = "ON"
		}
		row := []string{live, r.Name, string(r.Planet), strings.ToUpper(string(r.Type))}
		for _, a := range models.Attributes {
			row = append(row, r.Stats.Display(a))
		}
		rows[i] = row
	}

	v.table.SetRows(rows)
	v.updateHeaders()
	v.updatePagination()
}

func (v *GridView) updateHeaders() {
	for i, c := range v.columns {
		title := c.Title
		if c.Sortable && c.key == v.sort.Key {
			title += sortMarker(v.sort.Direction)
		}
		v.table.SetColumnTitle(i, title)
	}
	v.table.SetActiveColumn(v.cursor)
}

func (v *GridView) updatePagination() {
	page, pages := v.table.Page()
	v.table.SetPagination(page, pages, len(v.rows))
}

func sortMarker(d models.SortDirection) string {
	if d == models.SortAsc {
		return "▲"
	}
	return "▼"
}

// Render renders the survey grid.
func (v *GridView) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(v.palette.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(v.palette.Secondary)
	valueStyle := lipgloss.NewStyle().Foreground(v.palette.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(v.palette.Muted)

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== SURVEY GRID ==="))
	b.WriteString("\n\n")

	f := v.filter
	search := f.Search
	if search == "" {
		search = "*"
	}
	parts := []string{
		labelStyle.Render("QUERY: ") + valueStyle.Render(search),
		labelStyle.Render("PLANET: ") + valueStyle.Render(orAll(string(f.Planet))),
		labelStyle.Render("SPAWN: ") + valueStyle.Render(orAll(string(f.Spawn))),
		labelStyle.Render("CATEGORY: ") + valueStyle.Render(orAll(string(f.Category))),
		labelStyle.Render("SORT: ") + valueStyle.Render(v.sort.Key.String()+sortMarker(v.sort.Direction)),
	}
	b.WriteString(strings.Join(parts, mutedStyle.Render(" | ")))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(mutedStyle.Render("No resource data detected in sector."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.RenderResponsive(width))
		b.WriteString("\n")
		if r, ok := v.SelectedResource(); ok {
			b.WriteString(labelStyle.Render(v.describe(r)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if width > 0 && width < 60 {
		b.WriteString(labelStyle.Render("/:Find p/s/c:Filter a:Add"))
	} else {
		b.WriteString(labelStyle.Render("/:Search  p:Planet  s:Spawn  c:Category  r:Reset  ←→:Column  Enter:Sort  a:Add  e:Edit  Space:Spawn  d:Delete"))
	}

	return b.String()
}

func (v *GridView) describe(r models.Resource) string {
	logged := util.FormatDateTime(r.Timestamp.Time, v.layout)
	if !v.now.IsZero() && !r.Timestamp.IsZero() {
		logged += " (" + util.RelativeTimeString(r.Timestamp.Time, v.now) + ")"
	}
	return fmt.Sprintf("%s · %s · %s · %s · logged %s", r.Name, r.Category, r.Type, r.SpawnLabel(), logged)
}

func orAll(s string) string {
	if s == "" {
		return tracker.All
	}
	return s
}
