// Package stockroom provides the stockroom views: the inventory table joined
// with survey data and the inventory form.
package stockroom

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

const orphan = "---"

type column struct {
	components.Column
	key tracker.SortKey
}

const (
	colLive = iota
	colResource
	colType
	colFirstAttr
)

var colQuantity = colFirstAttr + len(models.Attributes)

func inventoryColumns() []column {
	cols := []column{
		{components.Column{Title: "LIVE", Width: 4, Align: lipgloss.Center, Priority: 8}, tracker.SortKey{}},
		{components.Column{Title: "RESOURCE", Width: 14, Weight: 1, Sortable: true, Priority: 10}, tracker.SortByResourceName},
		{components.Column{Title: "TYPE", Width: 12, Priority: 3}, tracker.SortKey{}},
	}
	for i, a := range models.Attributes {
		prio := 5
		if a == models.AttrOQ {
			prio = 7
		} else if i > 6 {
			prio = 4
		}
		cols = append(cols, column{
			components.Column{Title: a.Label(), Width: 4, Align: lipgloss.Right, Sortable: true, Priority: prio},
			tracker.SortByAttribute(a),
		})
	}
	cols = append(cols, column{
		components.Column{Title: "QUANTITY", Width: 14, Align: lipgloss.Right, Sortable: true, Priority: 9},
		tracker.SortByQuantity,
	})
	return cols
}

// InventoryView displays stock holdings joined with their survey records.
type InventoryView struct {
	table     *components.Table
	columns   []column
	items     []models.InventoryItem
	resources []models.Resource
	rows      []tracker.InventoryRow
	search    string
	sort      tracker.SortConfig
	cursor    int
	palette   components.Palette
	now       time.Time
	layout    string
}

// NewInventoryView creates an empty stockroom sorted by quantity.
func NewInventoryView() *InventoryView {
	cols := inventoryColumns()
	tableCols := make([]components.Column, len(cols))
	for i, c := range cols {
		tableCols[i] = c.Column
	}

	table := components.NewTable(tableCols)
	table.SetSeparator(" ")
	table.SetVisibleRows(20)
	table.Focus(true)

	v := &InventoryView{
		table:   table,
		columns: cols,
		sort:    tracker.DefaultInventorySort(),
		cursor:  colQuantity,
		layout:  util.DateTimeFormat,
	}
	v.SetPalette(components.DefaultPalette())
	v.refresh()
	return v
}

// SetPalette restyles the stockroom.
func (v *InventoryView) SetPalette(p components.Palette) {
	v.palette = p
	v.table.SetPalette(p)
	dim := lipgloss.NewStyle().Foreground(p.Muted)
	warn := lipgloss.NewStyle().Foreground(p.Error)
	high := lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	v.table.SetCellStyler(func(row, col int) (lipgloss.Style, bool) {
		if row < 0 || row >= len(v.rows) {
			return lipgloss.Style{}, false
		}
		r := v.rows[row]
		if !r.Resolved() {
			if col == colResource {
				return warn, true
			}
			return dim, true
		}
		if !r.Resource.InSpawn {
			return dim, true
		}
		if col >= colFirstAttr && col < colQuantity {
			if r.Resource.Stats.Value(models.Attributes[col-colFirstAttr]) >= models.HighQuality {
				return high, true
			}
		}
		return lipgloss.Style{}, false
	})
}

// SetNow sets the reference time for relative timestamps.
func (v *InventoryView) SetNow(t time.Time) {
	v.now = t
}

// SetDateFormat sets the layout used for absolute timestamps.
func (v *InventoryView) SetDateFormat(layout string) {
	if layout != "" {
		v.layout = layout
	}
}

// SetVisibleRows sets how many table rows fit on screen.
func (v *InventoryView) SetVisibleRows(n int) {
	v.table.SetVisibleRows(n)
	v.updatePagination()
}

// SetData replaces the inventory and the resources it is joined with.
func (v *InventoryView) SetData(items []models.InventoryItem, resources []models.Resource) {
	v.items = items
	v.resources = resources
	v.refresh()
}

// SetSearch filters items by resource name.
func (v *InventoryView) SetSearch(s string) {
	v.search = s
	v.refresh()
}

// Search returns the active search.
func (v *InventoryView) Search() string {
	return v.search
}

// Sort returns the active sort.
func (v *InventoryView) Sort() tracker.SortConfig {
	return v.sort
}

// Rows returns the joined rows currently shown, in display order.
func (v *InventoryView) Rows() []tracker.InventoryRow {
	return v.rows
}

// Items returns every inventory item, unfiltered.
func (v *InventoryView) Items() []models.InventoryItem {
	return v.items
}

// ResourceNames returns the names of every known resource, used as input
// suggestions.
func (v *InventoryView) ResourceNames() []string {
	out := make([]string, 0, len(v.resources))
	seen := make(map[string]bool, len(v.resources))
	for _, r := range v.resources {
		if !seen[r.Name] {
			seen[r.Name] = true
			out = append(out, r.Name)
		}
	}
	return out
}

// SortLeft moves the header cursor to the previous sortable column.
func (v *InventoryView) SortLeft() {
	for i := v.cursor - 1; i >= 0; i-- {
		if v.columns[i].Sortable {
			v.cursor = i
			break
		}
	}
	v.updateHeaders()
}

// SortRight moves the header cursor to the next sortable column.
func (v *InventoryView) SortRight() {
	for i := v.cursor + 1; i < len(v.columns); i++ {
		if v.columns[i].Sortable {
			v.cursor = i
			break
		}
	}
	v.updateHeaders()
}

// ApplySort sorts by the column under the header cursor.
func (v *InventoryView) ApplySort() {
	v.sort = v.sort.Toggle(v.columns[v.cursor].key)
	v.refresh()
}

// MoveUp moves the selection up.
func (v *InventoryView) MoveUp() {
	v.table.MoveUp()
	v.updatePagination()
}

// MoveDown moves the selection down.
func (v *InventoryView) MoveDown() {
	v.table.MoveDown()
	v.updatePagination()
}

// PageUp moves the selection up one page.
func (v *InventoryView) PageUp() {
	v.table.PageUp()
	v.updatePagination()
}

// PageDown moves the selection down one page.
func (v *InventoryView) PageDown() {
	v.table.PageDown()
	v.updatePagination()
}

// GoToTop selects the first row.
func (v *InventoryView) GoToTop() {
	v.table.GoToTop()
	v.updatePagination()
}

// GoToBottom selects the last row.
func (v *InventoryView) GoToBottom() {
	v.table.GoToBottom()
	v.updatePagination()
}

// SelectedRow returns the row under the selection.
func (v *InventoryView) SelectedRow() (tracker.InventoryRow, bool) {
	idx := v.table.Selected()
	if idx >= 0 && idx < len(v.rows) {
		return v.rows[idx], true
	}
	return tracker.InventoryRow{}, false
}

func (v *InventoryView) refresh() {
	v.rows = tracker.FilterInventory(v.items, v.resources, v.search, v.sort)

	rows := make([][]string, len(v.rows))
	for i, r := range v.rows {
		live, typ := orphan, orphan
		if r.Resolved() {
			live = "OFF"
			if r.Resource.InSpawn {
				live = "ON"
			}
			typ = strings.ToUpper(string(r.Resource.Type))
		}
		row := []string{live, r.Item.ResourceName, typ}
		for _, a := range models.Attributes {
			cell := "-"
			if r.Resolved() {
				cell = r.Resource.Stats.Display(a)
			}
			row = append(row, cell)
		}
		row = append(row, util.FormatQuantity(r.Item.Quantity))
		rows[i] = row
	}

	v.table.SetRows(rows)
	v.updateHeaders()
	v.updatePagination()
}

func (v *InventoryView) updateHeaders() {
	for i, c := range v.columns {
		title := c.Title
		if c.Sortable && c.key == v.sort.Key {
			title += sortMarker(v.sort.Direction)
		}
		v.table.SetColumnTitle(i, title)
	}
	v.table.SetActiveColumn(v.cursor)
}

func (v *InventoryView) updatePagination() {
	page, pages := v.table.Page()
	v.table.SetPagination(page, pages, len(v.rows))
}

func sortMarker(d models.SortDirection) string {
	if d == models.SortAsc {
		return "▲"
	}
	return "▼"
}

// Render renders the stockroom.
func (v *InventoryView) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(v.palette.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(v.palette.Secondary)
	valueStyle := lipgloss.NewStyle().Foreground(v.palette.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(v.palette.Muted)

	var b strings.Builder

	b.WriteString(titleStyle.Render("=== STOCKROOM ==="))
	b.WriteString("\n\n")

	search := v.search
	if search == "" {
		search = "*"
	}
	b.WriteString(labelStyle.Render("QUERY: ") + valueStyle.Render(search))
	b.WriteString(mutedStyle.Render(" | "))
	b.WriteString(labelStyle.Render("HOLDINGS: ") + valueStyle.Render(util.FormatQuantity(tracker.TotalQuantity(v.items))))
	b.WriteString("\n\n")

	if v.table.Empty() {
		b.WriteString(mutedStyle.Render("Stockroom empty. Log resources to begin inventory tracking."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.RenderResponsive(width))
		b.WriteString("\n")
		if r, ok := v.SelectedRow(); ok {
			b.WriteString(labelStyle.Render(v.describe(r)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if width > 0 && width < 60 {
		b.WriteString(labelStyle.Render("/:Find a:Log e:Qty d:Del"))
	} else {
		b.WriteString(labelStyle.Render("/:Search  ←→:Column  Enter:Sort  a:Log Stock  e:Edit Quantity  d:Delete"))
	}

	return b.String()
}

func (v *InventoryView) describe(r tracker.InventoryRow) string {
	logged := util.FormatDateTime(r.Item.Timestamp.Time, v.layout)
	if !v.now.IsZero() && !r.Item.Timestamp.IsZero() {
		logged += " (" + util.RelativeTimeString(r.Item.Timestamp.Time, v.now) + ")"
	}
	status := "no survey record"
	if r.Resolved() {
		status = fmt.Sprintf("%s · %s", r.Resource.Planet, r.Resource.SpawnLabel())
	}
	return fmt.Sprintf("%s · %s · %sT · updated %s",
		r.Item.ResourceName, status, util.FormatTonnage(float64(r.Item.Quantity)/1000), logged)
}
