package components

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors components render with. The TUI theme builds one
// per theme and hands it down so every component follows theme changes.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color
}

// DefaultPalette returns the standard palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:    lipgloss.Color("#78C3FB"),
		Secondary:  lipgloss.Color("#3A7CA5"),
		Accent:     lipgloss.Color("#FFD700"),
		Background: lipgloss.Color("#001219"),
		Muted:      lipgloss.Color("#1A3A4A"),
		Error:      lipgloss.Color("#FF4444"),
		Warning:    lipgloss.Color("#FFD700"),
		Success:    lipgloss.Color("#4ADE80"),
	}
}

// Paletted is implemented by components that can be restyled.
type Paletted interface {
	SetPalette(Palette)
}

func (p Palette) label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Secondary)
}

func (p Palette) value() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Primary)
}

func (p Palette) focus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Accent)
}

func (p Palette) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Muted)
}

func (p Palette) err() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Error)
}
