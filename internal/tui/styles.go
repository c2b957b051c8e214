// Package tui provides the terminal user interface for the resource tracker.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/swgrt/swgrt/internal/config"
	"github.com/swgrt/swgrt/internal/tui/components"
)

// ThemeName is the active color skin. The zero value is ThemeStandard.
type ThemeName int

const (
	ThemeStandard ThemeName = iota
	ThemeDark
	ThemeRebel
	ThemeImperial
)

var themeNames = []ThemeName{ThemeStandard, ThemeDark, ThemeRebel, ThemeImperial}

// Next returns the theme that follows n in the cycle.
func (n ThemeName) Next() ThemeName {
	return themeNames[(int(n)+1)%len(themeNames)]
}

// Label returns the display name of the skin.
func (n ThemeName) Label() string {
	return skins[n].label
}

// ParseThemeName maps a configured theme to a ThemeName, defaulting to
// ThemeStandard.
func ParseThemeName(t config.Theme) ThemeName {
	for _, n := range themeNames {
		if skins[n].config == t {
			return n
		}
	}
	return ThemeStandard
}

type skin struct {
	label  string
	config config.Theme
	colors components.Palette
}

func hex(s string) lipgloss.Color { return lipgloss.Color(s) }

var skins = map[ThemeName]skin{
	ThemeStandard: {"CEC Standard", config.ThemeStandard, components.DefaultPalette()},
	ThemeDark: {"Deep Void", config.ThemeDark, components.Palette{
		Primary: hex("#A1A1AA"), Secondary: hex("#3F3F46"), Accent: hex("#A855F7"),
		Background: hex("#0A0A0A"), Muted: hex("#27272A"),
		Error: hex("#EF4444"), Warning: hex("#EAB308"), Success: hex("#4ADE80"),
	}},
	ThemeRebel: {"Alliance", config.ThemeRebel, components.Palette{
		Primary: hex("#F1FAEE"), Secondary: hex("#A8DADC"), Accent: hex("#E63946"),
		Background: hex("#1A0F0A"), Muted: hex("#4A2C1D"),
		Error: hex("#E63946"), Warning: hex("#EAB308"), Success: hex("#4ADE80"),
	}},
	ThemeImperial: {"Remnant", config.ThemeImperial, components.Palette{
		Primary: hex("#D1D5DB"), Secondary: hex("#71717A"), Accent: hex("#DC2626"),
		Background: hex("#121212"), Muted: hex("#7F1D1D"),
		Error: hex("#EF4444"), Warning: hex("#EAB308"), Success: hex("#4ADE80"),
	}},
}

// Theme holds the styles the application chrome renders with.
type Theme struct {
	Name   ThemeName
	colors components.Palette

	Base    lipgloss.Style
	Primary lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Box    lipgloss.Style

	// Alert bar, by level
	Alert     lipgloss.Style
	AlertWarn lipgloss.Style
	AlertCrit lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	StatusDivider lipgloss.Style
}

// NewTheme creates the theme for the given skin. Unknown names get the
// standard skin.
func NewTheme(name ThemeName) *Theme {
	s, ok := skins[name]
	if !ok {
		name, s = ThemeStandard, skins[ThemeStandard]
	}
	c := s.colors
	fg := lipgloss.NewStyle().Foreground

	return &Theme{
		Name:   name,
		colors: c,

		Base:    fg(c.Primary),
		Primary: fg(c.Primary),
		Accent:  fg(c.Accent),
		Muted:   fg(c.Muted),

		Header: fg(c.Accent).Bold(true).Padding(0, 1),
		Footer: fg(c.Secondary).Padding(0, 1),
		Title:  fg(c.Accent).Bold(true).Padding(0, 1),
		Label:  fg(c.Secondary),
		Value:  fg(c.Primary),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Secondary).
			Padding(0, 1),

		Alert:     fg(c.Primary).Bold(true),
		AlertWarn: fg(c.Warning).Bold(true),
		AlertCrit: fg(c.Error).Bold(true),

		Tab: fg(c.Primary).Padding(0, 2),
		TabActive: fg(c.Background).
			Background(c.Accent).
			Bold(true).
			Padding(0, 2),

		StatusDivider: fg(c.Muted).SetString(" │ "),
	}
}

// Palette returns the colors handed to components and views.
func (t *Theme) Palette() components.Palette {
	return t.colors
}

// DrawHorizontalLine draws a muted single rule.
func (t *Theme) DrawHorizontalLine(width int) string {
	return t.Muted.Render(strings.Repeat("─", max(width, 0)))
}

// DrawDoubleLine draws a double rule in the secondary color.
func (t *Theme) DrawDoubleLine(width int) string {
	return t.Label.Render(strings.Repeat("═", max(width, 0)))
}
