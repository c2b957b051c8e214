// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column. Width is the fixed width, or the minimum
// width when Weight is set. Columns with a lower Priority are hidden first
// on narrow terminals.
type Column struct {
	Title    string
	Width    int
	Align    lipgloss.Position
	Sortable bool
	Priority int
	Weight   float64
}

// CellStyler overrides the style of a single cell. Returning false keeps the
// row style.
type CellStyler func(row, col int) (lipgloss.Style, bool)

// Table is a scrollable table component.
type Table struct {
	columns     []Column
	rows        [][]string
	selected    int
	offset      int
	visibleRows int
	focused     bool
	separator   string

	// Header cursor, -1 when no header is highlighted
	activeColumn int
	cellStyler   CellStyler

	// Styles
	headerStyle   lipgloss.Style
	activeStyle   lipgloss.Style
	rowStyle      lipgloss.Style
	rowAltStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	borderStyle   lipgloss.Style

	// Pagination
	currentPage int
	totalPages  int
	totalRows   int
}

// NewTable creates a new table with the given columns.
func NewTable(columns []Column) *Table {
	t := &Table{
		columns:      columns,
		rows:         [][]string{},
		visibleRows:  10,
		separator:    " | ",
		activeColumn: -1,
	}
	t.SetPalette(DefaultPalette())
	return t
}

// SetPalette restyles the table.
func (t *Table) SetPalette(p Palette) {
	t.headerStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	t.activeStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.Accent)
	t.rowStyle = lipgloss.NewStyle().Foreground(p.Primary)
	t.rowAltStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	t.selectedStyle = lipgloss.NewStyle().Background(p.Primary).Foreground(p.Background)
	t.borderStyle = lipgloss.NewStyle().Foreground(p.Muted)
}

// SetRows sets the table data, keeping the selection in range.
func (t *Table) SetRows(rows [][]string) {
	t.rows = rows
	t.selectRow(t.selected)
}

// SetPagination sets pagination info.
func (t *Table) SetPagination(page, totalPages, totalRows int) {
	t.currentPage = page
	t.totalPages = totalPages
	t.totalRows = totalRows
}

// Page returns the page holding the selection and the page count for
// the current visible row count.
func (t *Table) Page() (page, pages int) {
	if t.visibleRows <= 0 || len(t.rows) == 0 {
		return 1, 1
	}
	pages = (len(t.rows) + t.visibleRows - 1) / t.visibleRows
	return t.selected/t.visibleRows + 1, pages
}

// SetVisibleRows sets the number of rows drawn at once, at least one.
func (t *Table) SetVisibleRows(n int) {
	t.visibleRows = max(n, 1)
	t.selectRow(t.selected)
}

// SetSeparator sets the string drawn between cells.
func (t *Table) SetSeparator(sep string) {
	t.separator = sep
}

// SetColumnTitle replaces the title of column i.
func (t *Table) SetColumnTitle(i int, title string) {
	if i >= 0 && i < len(t.columns) {
		t.columns[i].Title = title
	}
}

// Columns returns the table columns.
func (t *Table) Columns() []Column {
	return t.columns
}

// SetActiveColumn highlights the header of column i; -1 clears it.
func (t *Table) SetActiveColumn(i int) {
	t.activeColumn = i
}

// SetCellStyler installs per-cell style overrides.
func (t *Table) SetCellStyler(fn CellStyler) {
	t.cellStyler = fn
}

// Focus sets the table focus state.
func (t *Table) Focus(focused bool) {
	t.focused = focused
}

// Selected returns the currently selected row index.
func (t *Table) Selected() int {
	return t.selected
}

// SelectedRow returns the cells of the selected row, or nil when empty.
func (t *Table) SelectedRow() []string {
	if len(t.rows) == 0 {
		return nil
	}
	return t.rows[t.selected]
}

// selectRow moves the selection to i, clamped to the rows, and scrolls the
// least distance that keeps it visible.
func (t *Table) selectRow(i int) {
	t.selected = max(min(i, len(t.rows)-1), 0)
	t.offset = max(min(t.offset, len(t.rows)-t.visibleRows), 0)
	switch {
	case t.selected < t.offset:
		t.offset = t.selected
	case t.selected >= t.offset+t.visibleRows:
		t.offset = t.selected - t.visibleRows + 1
	}
}

// MoveUp moves the selection up one row.
func (t *Table) MoveUp() { t.selectRow(t.selected - 1) }

// MoveDown moves the selection down one row.
func (t *Table) MoveDown() { t.selectRow(t.selected + 1) }

// PageUp moves the selection up one page.
func (t *Table) PageUp() { t.selectRow(t.selected - t.visibleRows) }

// PageDown moves the selection down one page.
func (t *Table) PageDown() { t.selectRow(t.selected + t.visibleRows) }

// GoToTop selects the first row.
func (t *Table) GoToTop() { t.selectRow(0) }

// GoToBottom selects the last row.
func (t *Table) GoToBottom() { t.selectRow(len(t.rows) - 1) }

// Render renders the table at its fixed column widths.
func (t *Table) Render() string {
	return t.RenderResponsive(0)
}

// computeWidths returns the width of every column for availableWidth cells.
// A width of 0 means the column is hidden. availableWidth <= 0 uses the
// fixed widths.
func (t *Table) computeWidths(availableWidth int) []int {
	if availableWidth <= 0 {
		widths := make([]int, len(t.columns))
		for i, col := range t.columns {
			widths[i] = col.Width
		}
		return widths
	}

	specs := make([]ColumnSpec, len(t.columns))
	for i, col := range t.columns {
		if col.Weight > 0 {
			specs[i] = ColumnSpec{MinWidth: col.Width, Weight: col.Weight, Priority: col.Priority}
		} else {
			specs[i] = ColumnSpec{Fixed: col.Width, Priority: col.Priority}
		}
	}
	return CalculateColumnWidths(specs, availableWidth, lipgloss.Width(t.separator))
}

// RenderResponsive renders the table fitted to width, hiding low priority
// columns that do not fit.
func (t *Table) RenderResponsive(width int) string {
	widths := t.computeWidths(width)

	lineWidth, visible := rowPadding, 0
	for _, w := range widths {
		if w > 0 {
			lineWidth += w
			visible++
		}
	}
	if visible > 1 {
		lineWidth += (visible - 1) * lipgloss.Width(t.separator)
	}
	rule := t.borderStyle.Render(strings.Repeat("-", lineWidth))

	lines := []string{t.renderHeader(widths), rule}
	for i := t.offset; i < min(t.offset+t.visibleRows, len(t.rows)); i++ {
		lines = append(lines, t.renderRow(i, widths))
	}

	out := strings.Join(lines, "\n") + "\n"
	if t.totalPages > 0 {
		out += rule + "\n" +
			t.borderStyle.Render(fmt.Sprintf("Page %d/%d | %d total", t.currentPage, t.totalPages, t.totalRows))
	}
	return out
}

func (t *Table) renderHeader(widths []int) string {
	var parts []string
	for i, col := range t.columns {
		if widths[i] == 0 {
			continue
		}
		style := t.headerStyle
		if i == t.activeColumn {
			style = t.activeStyle
		}
		parts = append(parts, style.Render(alignCell(col.Title, widths[i], col.Align)))
	}
	return " " + strings.Join(parts, t.separator) + " "
}

func (t *Table) renderRow(idx int, widths []int) string {
	isSelected := idx == t.selected && t.focused

	style := t.rowStyle
	if (idx-t.offset)%2 == 1 {
		style = t.rowAltStyle
	}

	cells := t.rows[idx]
	var parts []string
	for i, col := range t.columns {
		if widths[i] == 0 {
			continue
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = alignCell(cell, widths[i], col.Align)

		cellStyle := style
		if isSelected {
			cellStyle = t.selectedStyle
		} else if t.cellStyler != nil {
			if s, ok := t.cellStyler(idx, i); ok {
				cellStyle = s
			}
		}
		parts = append(parts, cellStyle.Render(cell))
	}

	sep := t.separator
	if isSelected {
		sep = t.selectedStyle.Render(sep)
	}
	return " " + strings.Join(parts, sep) + " "
}

func alignCell(cell string, width int, align lipgloss.Position) string {
	cell = Truncate(cell, width)
	switch align {
	case lipgloss.Right:
		return PadLeft(cell, width)
	case lipgloss.Center:
		return PadCenter(cell, width)
	default:
		return PadRight(cell, width)
	}
}

// Empty returns true if the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}
