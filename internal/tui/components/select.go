package components

import "strings"

// Select picks one of a fixed list of options.
type Select struct {
	label    string
	options  []string
	selected int
	focused  bool
	compact  bool
	palette  Palette
}

// NewSelect creates a select with the first option chosen.
func NewSelect(label string, options []string) *Select {
	return &Select{
		label:   label,
		options: options,
		palette: DefaultPalette(),
	}
}

// SetSelected chooses the option at idx. Out of range indexes are ignored.
func (s *Select) SetSelected(idx int) *Select {
	if idx >= 0 && idx < len(s.options) {
		s.selected = idx
	}
	return s
}

// SetValue selects the option equal to v. Unknown values leave the
// selection unchanged.
func (s *Select) SetValue(v string) *Select {
	for i, opt := range s.options {
		if opt == v {
			return s.SetSelected(i)
		}
	}
	return s
}

// SetOptions replaces the options and selects the first one.
func (s *Select) SetOptions(options []string) *Select {
	s.options = options
	s.selected = 0
	return s
}

// SetCompact renders only the selected option between arrows.
func (s *Select) SetCompact(c bool) *Select {
	s.compact = c
	return s
}

// SetPalette restyles the select.
func (s *Select) SetPalette(p Palette) {
	s.palette = p
}

// Focus sets the focus state.
func (s *Select) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Select) IsFocused() bool {
	return s.focused
}

// Value returns the selected option, or "" when there are none.
func (s *Select) Value() string {
	if s.selected < len(s.options) {
		return s.options[s.selected]
	}
	return ""
}

// SelectedIndex returns the selected index.
func (s *Select) SelectedIndex() int {
	return s.selected
}

// HandleKey moves the selection. Left and right stop at the ends; space
// wraps around.
func (s *Select) HandleKey(key string) {
	n := len(s.options)
	if !s.focused || n == 0 {
		return
	}

	switch key {
	case "left", "h":
		s.selected = max(s.selected-1, 0)
	case "right", "l":
		s.selected = min(s.selected+1, n-1)
	case " ":
		s.selected = (s.selected + 1) % n
	}
}

// Render renders the select with the standard label column.
func (s *Select) Render() string {
	return s.RenderWithLabelWidth(labelWidth)
}

// RenderWithLabelWidth renders the select with a label column of the given
// width. A width of 0 omits the label.
func (s *Select) RenderWithLabelWidth(width int) string {
	plain := s.palette.label()
	chosen := s.palette.value().Bold(true)
	open, closing := "(", ")"
	if s.focused {
		chosen = s.palette.focus().Bold(true)
		open, closing = "[", "]"
	}

	var cells []string
	if s.compact {
		cells = []string{chosen.Render("< " + s.Value() + " >")}
	} else {
		for i, opt := range s.options {
			if i == s.selected {
				cells = append(cells, chosen.Render(open+opt+closing))
			} else {
				cells = append(cells, plain.Render(" "+opt+" "))
			}
		}
	}

	line := strings.Join(cells, " ")
	if width > 0 {
		line = plain.Width(width).Render(s.label+":") + " " + line
	}
	return line
}
