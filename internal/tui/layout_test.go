package tui

import (
	"strings"
	"testing"

	"github.com/swgrt/swgrt/internal/config"
)

func TestScreen_ContentWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{80, 80},
		{30, 40},
		{200, 160},
		{160, 160},
	}

	for _, tt := range tests {
		got := Screen{Width: tt.width, Height: 40}.ContentWidth()
		if got != tt.expected {
			t.Errorf("ContentWidth() at width %d = %d, want %d", tt.width, got, tt.expected)
		}
	}
}

func TestScreen_Heights(t *testing.T) {
	tests := []struct {
		height    int
		body      int
		tableRows int
	}{
		{24, 18, 8},
		{40, 34, 24},
		{8, 5, 3},
		{5, 5, 3},
	}

	for _, tt := range tests {
		s := Screen{Width: 160, Height: tt.height}
		if got := s.BodyHeight(); got != tt.body {
			t.Errorf("BodyHeight() at height %d = %d, want %d", tt.height, got, tt.body)
		}
		if got := s.TableRows(); got != tt.tableRows {
			t.Errorf("TableRows() at height %d = %d, want %d", tt.height, got, tt.tableRows)
		}
	}
}

func TestScreen_Compact(t *testing.T) {
	if !(Screen{Width: 120}).Compact() {
		t.Error("expected 120 columns to be compact")
	}
	if (Screen{Width: 140}).Compact() {
		t.Error("expected 140 columns to use full key help")
	}
}

func TestPanel_ContainsTitleAndContent(t *testing.T) {
	theme := NewTheme(ThemeStandard)
	out := theme.Panel("FILTERS", "Planet: All", 40)

	if !strings.Contains(out, "FILTERS") {
		t.Error("expected panel title in output")
	}
	if !strings.Contains(out, "Planet: All") {
		t.Error("expected panel content in output")
	}
}

func TestThemeName_NextCycles(t *testing.T) {
	seen := []ThemeName{ThemeStandard}
	n := ThemeStandard
	for range 4 {
		n = n.Next()
		seen = append(seen, n)
	}

	want := []ThemeName{ThemeStandard, ThemeDark, ThemeRebel, ThemeImperial, ThemeStandard}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("cycle[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestParseThemeName(t *testing.T) {
	tests := []struct {
		in   string
		want ThemeName
	}{
		{"standard", ThemeStandard},
		{"dark", ThemeDark},
		{"rebel", ThemeRebel},
		{"imperial", ThemeImperial},
		{"", ThemeStandard},
		{"neon", ThemeStandard},
	}

	for _, tt := range tests {
		if got := ParseThemeName(config.Theme(tt.in)); got != tt.want {
			t.Errorf("ParseThemeName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewTheme_LabelsAndPalette(t *testing.T) {
	for _, n := range themeNames {
		theme := NewTheme(n)
		if theme.Name != n {
			t.Errorf("expected theme name %v, got %v", n, theme.Name)
		}
		if n.Label() == "" {
			t.Errorf("expected label for theme %v", n)
		}
		if theme.Palette().Accent == "" {
			t.Errorf("expected palette accent for theme %v", n)
		}
	}
	if NewTheme(ThemeRebel).Palette().Accent == NewTheme(ThemeStandard).Palette().Accent {
		t.Error("expected distinct accents across themes")
	}
}
