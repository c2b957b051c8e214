package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Screen geometry limits.
const (
	minContentWidth = 40
	maxContentWidth = 160

	// chromeLines is the height of the header, tab bar, alert bar and footer.
	chromeLines   = 6
	minBodyHeight = 5

	// tableChrome is the space a view spends above and below its table.
	tableChrome  = 10
	minTableRows = 3

	// compactWidth is the width below which the footer shortens its key help.
	compactWidth = 140
)

// Screen is the terminal size the views are laid out against.
type Screen struct {
	Width  int
	Height int
}

// ContentWidth is the terminal width clamped to the usable content range.
func (s Screen) ContentWidth() int {
	return max(minContentWidth, min(s.Width, maxContentWidth))
}

// BodyHeight is the height left between the chrome lines.
func (s Screen) BodyHeight() int {
	return max(s.Height-chromeLines, minBodyHeight)
}

// TableRows is the number of table rows that fit in the body.
func (s Screen) TableRows() int {
	return max(s.BodyHeight()-tableChrome, minTableRows)
}

// Compact reports whether the terminal is too narrow for full key help.
func (s Screen) Compact() bool {
	return s.Width < compactWidth
}

// Panel renders a bordered panel with the title set into the top border.
func (t *Theme) Panel(title, content string, width int) string {
	rendered := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.colors.Secondary).
		Width(width-2).
		Padding(0, 1).
		Render(content)
	if title == "" {
		return rendered
	}

	lines := strings.Split(rendered, "\n")
	label := t.Accent.Bold(true).Render(" " + title + " ")
	labelWidth := lipgloss.Width(label)
	border := []rune(lines[0])
	// Only splice into an unstyled border, where runes map to cells.
	if labelWidth+4 < len(border) && lipgloss.Width(lines[0]) == len(border) {
		lines[0] = string(border[:2]) + label + string(border[2+labelWidth:])
	}
	return strings.Join(lines, "\n")
}
