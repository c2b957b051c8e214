package components

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// labelWidth is the label column width used by Render.
const labelWidth = 16

// Input is a single-line text field. The value is edited as runes so the
// cursor moves by character, not byte.
type Input struct {
	label       string
	value       []rune
	cursor      int
	placeholder string
	width       int
	maxLength   int
	required    bool
	focused     bool
	err         string
	suggestions []string
	palette     Palette
}

// NewInput creates an empty field with the given label.
func NewInput(label string) *Input {
	return &Input{
		label:     label,
		width:     20,
		maxLength: 100,
		palette:   DefaultPalette(),
	}
}

// SetValue replaces the value and puts the cursor at its end.
func (i *Input) SetValue(v string) *Input {
	i.value = []rune(v)
	i.cursor = len(i.value)
	return i
}

// SetPlaceholder sets the text shown while the field is empty and unfocused.
func (i *Input) SetPlaceholder(p string) *Input {
	i.placeholder = p
	return i
}

// SetWidth sets the minimum display width of the value.
func (i *Input) SetWidth(w int) *Input {
	i.width = w
	return i
}

// SetMaxLength caps the value length in runes.
func (i *Input) SetMaxLength(m int) *Input {
	i.maxLength = m
	return i
}

// SetRequired marks the field as required.
func (i *Input) SetRequired(r bool) *Input {
	i.required = r
	return i
}

// SetError sets the message shown after the field.
func (i *Input) SetError(e string) *Input {
	i.err = e
	return i
}

// SetSuggestions sets the values offered for completion with ctrl+f.
func (i *Input) SetSuggestions(s []string) *Input {
	i.suggestions = s
	return i
}

// SetPalette restyles the input.
func (i *Input) SetPalette(p Palette) {
	i.palette = p
}

// Focus sets the focus state.
func (i *Input) Focus(focused bool) {
	i.focused = focused
	i.cursor = min(i.cursor, len(i.value))
}

// IsFocused returns the focus state.
func (i *Input) IsFocused() bool {
	return i.focused
}

// Value returns the current value.
func (i *Input) Value() string {
	return string(i.value)
}

// Suggestion returns the first suggestion that starts with the current
// value, ignoring case. An empty value or an exact match yields "".
func (i *Input) Suggestion() string {
	if len(i.value) == 0 {
		return ""
	}
	current := string(i.value)
	if slices.Contains(i.suggestions, current) {
		return ""
	}
	prefix := strings.ToLower(current)
	for _, s := range i.suggestions {
		if strings.HasPrefix(strings.ToLower(s), prefix) {
			return s
		}
	}
	return ""
}

// HandleKey applies an editing key or inserts a printable character.
// Unfocused inputs ignore keys.
func (i *Input) HandleKey(key string) {
	if !i.focused {
		return
	}

	switch key {
	case "backspace":
		if i.cursor > 0 {
			i.cursor--
			i.value = slices.Delete(i.value, i.cursor, i.cursor+1)
		}
	case "delete":
		if i.cursor < len(i.value) {
			i.value = slices.Delete(i.value, i.cursor, i.cursor+1)
		}
	case "left":
		i.cursor = max(i.cursor-1, 0)
	case "right":
		i.cursor = min(i.cursor+1, len(i.value))
	case "home", "ctrl+a":
		i.cursor = 0
	case "end", "ctrl+e":
		i.cursor = len(i.value)
	case "ctrl+u":
		i.SetValue("")
	case "ctrl+f":
		if s := i.Suggestion(); s != "" {
			i.SetValue(s)
		}
	default:
		i.insert(key)
	}
}

// insert adds key at the cursor when it is a single printable rune.
func (i *Input) insert(key string) {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || !unicode.IsPrint(r) || len(i.value) >= i.maxLength {
		return
	}
	i.value = slices.Insert(i.value, i.cursor, r)
	i.cursor++
}

// Validate checks the required constraint and sets or clears the error.
func (i *Input) Validate() bool {
	if i.required && strings.TrimSpace(string(i.value)) == "" {
		i.err = "Required"
		return false
	}
	i.err = ""
	return true
}

// Render renders the field with the standard label column.
func (i *Input) Render() string {
	return i.RenderWithLabelWidth(labelWidth)
}

// RenderWithLabelWidth renders the field with a label column of the given
// width. A width of 0 omits the label.
func (i *Input) RenderWithLabelWidth(width int) string {
	var parts []string
	if width > 0 {
		label := i.label
		if i.required {
			label += "*"
		}
		parts = append(parts, i.palette.label().Width(width).Render(label+":"))
	}

	parts = append(parts, i.renderValue())

	if i.focused {
		if s := i.Suggestion(); s != "" {
			parts = append(parts, i.palette.muted().Render("ctrl+f: "+s))
		}
	}
	if i.err != "" {
		parts = append(parts, i.palette.err().Render(i.err))
	}
	return strings.Join(parts, " ")
}

// renderValue draws the value, cursor or placeholder padded to the width.
func (i *Input) renderValue() string {
	text := string(i.value)
	style := i.palette.value()
	switch {
	case i.focused:
		text = string(i.value[:i.cursor]) + "_" + string(i.value[i.cursor:])
		style = i.palette.focus()
	case len(i.value) == 0 && i.placeholder != "":
		text = i.placeholder
		style = i.palette.muted()
	}

	pad := max(i.width-utf8.RuneCountInString(text), 0)
	return style.Render(text) + strings.Repeat(" ", pad)
}
