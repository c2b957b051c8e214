package components

import (
	"strings"
	"testing"
)

func TestInput_BasicOperations(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Lovapine")

	if input.Value() != "Lovapine" {
		t.Errorf("Expected 'Lovapine', got %q", input.Value())
	}

	input.SetWidth(30)
	input.SetMaxLength(50)
	input.SetRequired(true)
	input.SetPlaceholder("Enter name")

	if !input.Validate() {
		t.Error("Expected validation to pass with value set")
	}
}

func TestInput_RequiredValidation(t *testing.T) {
	input := NewInput("Name").SetRequired(true)

	// Empty value should fail
	if input.Validate() {
		t.Error("Expected validation to fail for empty required field")
	}

	// With value should pass
	input.SetValue("Lovapine")
	if !input.Validate() {
		t.Error("Expected validation to pass with value set")
	}

	// Whitespace-only should fail
	input.SetValue("   ")
	if input.Validate() {
		t.Error("Expected validation to fail for whitespace-only required field")
	}
}

func TestInput_Focus(t *testing.T) {
	input := NewInput("Name")

	if input.IsFocused() {
		t.Error("Should not be focused initially")
	}

	input.Focus(true)
	if !input.IsFocused() {
		t.Error("Should be focused after Focus(true)")
	}

	input.Focus(false)
	if input.IsFocused() {
		t.Error("Should not be focused after Focus(false)")
	}
}

func TestInput_HandleKey_TypeCharacter(t *testing.T) {
	input := NewInput("Name")
	input.Focus(true)

	input.HandleKey("A")
	input.HandleKey("B")
	input.HandleKey("C")

	if input.Value() != "ABC" {
		t.Errorf("Expected 'ABC', got %q", input.Value())
	}
}

func TestInput_HandleKey_Backspace(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	input.Focus(true)

	input.HandleKey("backspace")
	if input.Value() != "Hell" {
		t.Errorf("Expected 'Hell', got %q", input.Value())
	}
}

func TestInput_HandleKey_CursorMovement(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	input.Focus(true)

	// Cursor at end (5), move left
	input.HandleKey("left")
	// Now at 4, type a char
	input.HandleKey("X")
	if input.Value() != "HellXo" {
		t.Errorf("Expected 'HellXo', got %q", input.Value())
	}

	// Home
	input.HandleKey("home")
	input.HandleKey("Y")
	if input.Value() != "YHellXo" {
		t.Errorf("Expected 'YHellXo', got %q", input.Value())
	}
}

func TestInput_HandleKey_NotFocused(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	// Not focused

	input.HandleKey("A")
	if input.Value() != "Hello" {
		t.Errorf("Should not handle keys when not focused, got %q", input.Value())
	}
}

func TestInput_Render_ShowsLabel(t *testing.T) {
	input := NewInput("Resource")
	input.SetValue("Lovapine")

	output := input.Render()
	if !strings.Contains(output, "Resource") {
		t.Error("Expected label 'Resource' in output")
	}
	if !strings.Contains(output, "Lovapine") {
		t.Error("Expected value 'Lovapine' in output")
	}
}

func TestInput_RenderWithLabelWidth_ZeroHidesLabel(t *testing.T) {
	input := NewInput("Resource")
	input.SetValue("Lovapine")

	output := input.RenderWithLabelWidth(0)
	// With labelWidth=0, the label should be omitted
	if strings.Contains(output, "Resource") {
		t.Error("Expected label to be hidden with labelWidth=0")
	}
	if !strings.Contains(output, "Lovapine") {
		t.Error("Expected value 'Lovapine' in output")
	}
}

func TestInput_RenderWithLabelWidth_Custom(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Lovapine")

	output := input.RenderWithLabelWidth(12)
	if !strings.Contains(output, "Name") {
		t.Error("Expected label in output")
	}
}

func TestInput_Render_ShowsPlaceholder(t *testing.T) {
	input := NewInput("Name").SetPlaceholder("Enter name")

	output := input.Render()
	if !strings.Contains(output, "Enter name") {
		t.Error("Expected placeholder in output when unfocused and empty")
	}
}

func TestInput_Render_ShowsCursor(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hi")
	input.Focus(true)

	output := input.Render()
	if !strings.Contains(output, "_") {
		t.Error("Expected cursor '_' in focused input output")
	}
}

func TestSelect_BasicOperations(t *testing.T) {
	sel := NewSelect("Planet", []string{"Corellia", "Naboo", "Tatooine"})

	if sel.Value() != "Corellia" {
		t.Errorf("Expected 'Corellia', got %q", sel.Value())
	}
	if sel.SelectedIndex() != 0 {
		t.Errorf("Expected index 0, got %d", sel.SelectedIndex())
	}

	sel.SetSelected(2)
	if sel.Value() != "Tatooine" {
		t.Errorf("Expected 'Tatooine', got %q", sel.Value())
	}
}

func TestSelect_HandleKey(t *testing.T) {
	sel := NewSelect("Planet", []string{"Corellia", "Naboo", "Tatooine"})
	sel.Focus(true)

	// Move right
	sel.HandleKey("right")
	if sel.Value() != "Naboo" {
		t.Errorf("Expected 'Naboo', got %q", sel.Value())
	}

	sel.HandleKey("right")
	if sel.Value() != "Tatooine" {
		t.Errorf("Expected 'Tatooine', got %q", sel.Value())
	}

	// Can't move beyond last
	sel.HandleKey("right")
	if sel.Value() != "Tatooine" {
		t.Errorf("Expected 'Tatooine', got %q", sel.Value())
	}

	// Move left
	sel.HandleKey("left")
	if sel.Value() != "Naboo" {
		t.Errorf("Expected 'Naboo', got %q", sel.Value())
	}
}

func TestSelect_HandleKey_NotFocused(t *testing.T) {
	sel := NewSelect("Planet", []string{"Corellia", "Naboo", "Tatooine"})
	// Not focused

	sel.HandleKey("right")
	if sel.Value() != "Corellia" {
		t.Errorf("Should not handle keys when not focused, got %q", sel.Value())
	}
}

func TestSelect_Render(t *testing.T) {
	sel := NewSelect("Planet", []string{"Corellia", "Naboo", "Tatooine"})
	sel.SetSelected(1)

	output := sel.Render()
	if !strings.Contains(output, "Planet") {
		t.Error("Expected label 'Planet' in output")
	}
	if !strings.Contains(output, "Naboo") {
		t.Error("Expected selected option 'Naboo' in output")
	}
}

func TestSelect_RenderWithLabelWidth(t *testing.T) {
	sel := NewSelect("Planet", []string{"Corellia", "Naboo"})

	output := sel.RenderWithLabelWidth(10)
	if !strings.Contains(output, "Planet") {
		t.Error("Expected label in output")
	}
}

func TestSelect_SetSelected_OutOfBounds(t *testing.T) {
	sel := NewSelect("Planet", []string{"Corellia", "Naboo"})

	sel.SetSelected(-1)
	if sel.SelectedIndex() != 0 {
		t.Errorf("Expected index 0 after invalid SetSelected(-1), got %d", sel.SelectedIndex())
	}

	sel.SetSelected(99)
	if sel.SelectedIndex() != 0 {
		t.Errorf("Expected index 0 after invalid SetSelected(99), got %d", sel.SelectedIndex())
	}
}

func TestForm_BasicFlow(t *testing.T) {
	form := NewForm("Test Form")

	input1 := NewInput("Field1")
	input2 := NewInput("Field2")
	form.AddField(input1)
	form.AddField(input2)

	if form.IsSubmitted() {
		t.Error("Should not be submitted initially")
	}
	if form.IsCancelled() {
		t.Error("Should not be cancelled initially")
	}

	// First field should be focused
	if !input1.IsFocused() {
		t.Error("First field should be focused")
	}

	// Tab to next
	form.HandleKey("tab")
	if !input2.IsFocused() {
		t.Error("Second field should be focused after tab")
	}
	if input1.IsFocused() {
		t.Error("First field should not be focused after tab")
	}

	// Submit
	form.HandleKey("ctrl+s")
	if !form.IsSubmitted() {
		t.Error("Form should be submitted after Ctrl+S")
	}
}

func TestForm_Cancel(t *testing.T) {
	form := NewForm("Test")
	form.AddField(NewInput("Field"))

	form.HandleKey("esc")
	if !form.IsCancelled() {
		t.Error("Form should be cancelled after Esc")
	}
}

func TestForm_Render(t *testing.T) {
	form := NewForm("Test Form")
	form.AddField(NewInput("Name").SetValue("Lovapine"))

	output := form.Render()
	if !strings.Contains(output, "Test Form") {
		t.Error("Expected title in form output")
	}
	if !strings.Contains(output, "Name") {
		t.Error("Expected field label in form output")
	}
}

func TestForm_RenderResponsive(t *testing.T) {
	form := NewForm("Test Form")
	form.AddField(NewInput("Name").SetValue("Lovapine"))

	// Wide
	wide := form.RenderResponsive(120)
	if !strings.Contains(wide, "Shift+Tab") {
		t.Error("Expected full help text on wide terminal")
	}

	// Narrow
	narrow := form.RenderResponsive(50)
	if strings.Contains(narrow, "Shift+Tab") {
		t.Error("Expected compact help text on narrow terminal")
	}
}

func TestForm_SetError(t *testing.T) {
	form := NewForm("Test")
	form.AddField(NewInput("Field"))
	form.SetError("Something went wrong")

	output := form.Render()
	if !strings.Contains(output, "Something went wrong") {
		t.Error("Expected error message in form output")
	}
}

func TestInput_HandleKey_Runes(t *testing.T) {
	input := NewInput("Name")
	input.Focus(true)

	for _, k := range []string{"Å", "l", "d"} {
		input.HandleKey(k)
	}
	input.HandleKey("left")
	input.HandleKey("backspace")

	if input.Value() != "Åd" {
		t.Errorf("Expected 'Åd', got %q", input.Value())
	}

	input.HandleKey("ctrl+u")
	if input.Value() != "" {
		t.Errorf("Expected empty value after ctrl+u, got %q", input.Value())
	}
}

func TestInput_HandleKey_IgnoresControlKeys(t *testing.T) {
	input := NewInput("Name")
	input.Focus(true)

	input.HandleKey("ctrl+x")
	input.HandleKey("tab")
	input.HandleKey("\t")

	if input.Value() != "" {
		t.Errorf("Expected control keys ignored, got %q", input.Value())
	}
}

func TestInput_MaxLength(t *testing.T) {
	input := NewInput("Qty").SetMaxLength(3)
	input.Focus(true)

	for _, k := range []string{"1", "2", "3", "4"} {
		input.HandleKey(k)
	}
	if input.Value() != "123" {
		t.Errorf("Expected '123', got %q", input.Value())
	}
}

func TestInput_Suggestion(t *testing.T) {
	input := NewInput("Resource").SetSuggestions([]string{"Lovapine", "Dunapine", "Lokine"})
	input.Focus(true)

	if input.Suggestion() != "" {
		t.Errorf("Expected no suggestion for empty value, got %q", input.Suggestion())
	}

	input.HandleKey("l")
	input.HandleKey("o")
	if input.Suggestion() != "Lovapine" {
		t.Errorf("Expected 'Lovapine', got %q", input.Suggestion())
	}
	if !strings.Contains(input.Render(), "ctrl+f: Lovapine") {
		t.Error("Expected suggestion hint in focused render")
	}

	input.HandleKey("ctrl+f")
	if input.Value() != "Lovapine" {
		t.Errorf("Expected completion to 'Lovapine', got %q", input.Value())
	}
	if input.Suggestion() != "" {
		t.Errorf("Expected no suggestion after exact match, got %q", input.Suggestion())
	}
}

func TestInput_Suggestion_NoMatch(t *testing.T) {
	input := NewInput("Resource").SetSuggestions([]string{"Lovapine"})
	input.SetValue("Zz")
	input.Focus(true)

	input.HandleKey("ctrl+f")
	if input.Value() != "Zz" {
		t.Errorf("Expected value unchanged without a match, got %q", input.Value())
	}
}

func TestSelect_SetValueAndOptions(t *testing.T) {
	sel := NewSelect("Type", []string{"Metal", "Ore", "Gemstone"})

	sel.SetValue("Gemstone")
	if sel.Value() != "Gemstone" {
		t.Errorf("Expected 'Gemstone', got %q", sel.Value())
	}

	sel.SetValue("Flora")
	if sel.Value() != "Gemstone" {
		t.Errorf("Expected unknown value to keep selection, got %q", sel.Value())
	}

	sel.SetOptions([]string{"Gas", "Water"})
	if sel.Value() != "Gas" {
		t.Errorf("Expected first option after SetOptions, got %q", sel.Value())
	}
}

func TestSelect_SpaceCycles(t *testing.T) {
	sel := NewSelect("In Spawn", []string{"ACTIVE", "DESPAWNED"})
	sel.Focus(true)

	sel.HandleKey(" ")
	if sel.Value() != "DESPAWNED" {
		t.Errorf("Expected 'DESPAWNED', got %q", sel.Value())
	}
	sel.HandleKey(" ")
	if sel.Value() != "ACTIVE" {
		t.Errorf("Expected space to wrap to 'ACTIVE', got %q", sel.Value())
	}
}

func TestSelect_CompactRender(t *testing.T) {
	sel := NewSelect("Planet", []string{"Corellia", "Naboo"}).SetCompact(true)
	sel.SetSelected(1)

	output := sel.Render()
	if !strings.Contains(output, "< Naboo >") {
		t.Errorf("Expected compact selection, got %q", output)
	}
	if strings.Contains(output, "Corellia") {
		t.Error("Expected unselected options hidden in compact mode")
	}
}

func TestForm_EnterSubmitsOnLastField(t *testing.T) {
	form := NewForm("Log")
	form.AddField(NewInput("Resource"))
	form.AddField(NewInput("Quantity"))

	form.HandleKey("enter")
	if form.IsSubmitted() {
		t.Fatal("Enter on first field should move focus, not submit")
	}
	if form.FocusIndex() != 1 {
		t.Errorf("Expected focus index 1, got %d", form.FocusIndex())
	}

	form.HandleKey("enter")
	if !form.IsSubmitted() {
		t.Fatal("Enter on last field should submit")
	}

	form.ClearSubmitted()
	if form.IsSubmitted() {
		t.Error("Expected submitted flag cleared")
	}
}

func TestForm_ShiftTabWraps(t *testing.T) {
	form := NewForm("Log")
	first := NewInput("Resource")
	last := NewInput("Quantity")
	form.AddField(first).AddField(last)

	form.HandleKey("shift+tab")
	if !last.IsFocused() || first.IsFocused() {
		t.Error("Expected shift+tab to wrap focus to the last field")
	}
}

func TestForm_Field(t *testing.T) {
	form := NewForm("Log")
	input := NewInput("Resource")
	form.AddField(input)

	if form.Field(0) != FormField(input) {
		t.Error("Expected Field(0) to return the first field")
	}
	if form.Field(3) != nil {
		t.Error("Expected nil for out-of-range field")
	}
}

func TestForm_SetPaletteReachesFields(t *testing.T) {
	form := NewForm("Log")
	input := NewInput("Resource")
	form.AddField(input)

	p := DefaultPalette()
	p.Accent = "#e63946"
	form.SetPalette(p)

	if input.palette.Accent != p.Accent {
		t.Errorf("Expected field palette accent %q, got %q", p.Accent, input.palette.Accent)
	}
}
