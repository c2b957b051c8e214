package components

import "strings"

// FormField is a component a Form can hold.
type FormField interface {
	Focus(bool)
	IsFocused() bool
	HandleKey(string)
	Render() string
}

var (
	_ FormField = (*Input)(nil)
	_ FormField = (*Select)(nil)
)

const (
	formHelp        = "Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+S:Save  Esc:Cancel"
	formHelpCompact = "Tab:Next  ^S:Save  Esc:Cancel"
	formNarrowWidth = 60
)

// Form stacks fields under a title and tracks focus, submit and cancel.
type Form struct {
	title     string
	fields    []FormField
	focus     int
	submitted bool
	cancelled bool
	err       string
	palette   Palette
}

// NewForm creates an empty form.
func NewForm(title string) *Form {
	return &Form{
		title:   title,
		palette: DefaultPalette(),
	}
}

// AddField appends a field, styling it with the form palette. The first
// field added takes focus.
func (f *Form) AddField(field FormField) *Form {
	if p, ok := field.(Paletted); ok {
		p.SetPalette(f.palette)
	}
	f.fields = append(f.fields, field)
	field.Focus(len(f.fields) == 1)
	return f
}

// SetPalette restyles the form and every field that supports it.
func (f *Form) SetPalette(p Palette) {
	f.palette = p
	for _, field := range f.fields {
		if pf, ok := field.(Paletted); ok {
			pf.SetPalette(p)
		}
	}
}

// Field returns the field at index i, or nil.
func (f *Form) Field(i int) FormField {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	return f.fields[i]
}

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int {
	return f.focus
}

// HandleKey handles navigation, submit and cancel keys and passes anything
// else to the focused field. Enter advances, or submits on the last field.
func (f *Form) HandleKey(key string) {
	switch key {
	case "tab", "down":
		f.moveFocus(1)
	case "shift+tab", "up":
		f.moveFocus(-1)
	case "ctrl+s":
		f.submitted = true
	case "esc":
		f.cancelled = true
	case "enter":
		if f.focus == len(f.fields)-1 {
			f.submitted = true
		} else {
			f.moveFocus(1)
		}
	default:
		if field := f.Field(f.focus); field != nil {
			field.HandleKey(key)
		}
	}
}

// moveFocus shifts focus by delta fields, wrapping at both ends.
func (f *Form) moveFocus(delta int) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	f.fields[f.focus].Focus(false)
	f.focus = ((f.focus+delta)%n + n) % n
	f.fields[f.focus].Focus(true)
}

// IsSubmitted reports whether the form was submitted.
func (f *Form) IsSubmitted() bool {
	return f.submitted
}

// ClearSubmitted keeps the form open after a rejected submit.
func (f *Form) ClearSubmitted() {
	f.submitted = false
}

// IsCancelled reports whether the form was cancelled.
func (f *Form) IsCancelled() bool {
	return f.cancelled
}

// SetError sets the form-level error message.
func (f *Form) SetError(err string) {
	f.err = err
}

// Render renders the form at full width.
func (f *Form) Render() string {
	return f.RenderResponsive(0)
}

// RenderResponsive renders the form for a terminal of the given width,
// shortening the help line on narrow terminals. A width of 0 means wide.
func (f *Form) RenderResponsive(width int) string {
	lines := []string{f.palette.focus().Bold(true).Render("=== " + f.title + " ==="), ""}
	for _, field := range f.fields {
		lines = append(lines, field.Render())
	}
	if f.err != "" {
		lines = append(lines, "", f.palette.err().Render("Error: "+f.err))
	}

	help := formHelp
	if width > 0 && width < formNarrowWidth {
		help = formHelpCompact
	}
	lines = append(lines, "", f.palette.label().Render(help))
	return strings.Join(lines, "\n")
}
