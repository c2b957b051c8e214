package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/swgrt/swgrt/internal/config"
	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/storage"
)

// newE2EApp creates an App for end-to-end testing via teatest.
// Unlike newTestApp, this does NOT pre-configure width/height/ready or load
// data; the program runs Init and teatest sends WindowSizeMsg via
// WithInitialTermSize.
func newE2EApp(t *testing.T, doc models.Document) (*App, *storage.MemoryGateway) {
	t.Helper()

	gw := storage.NewMemoryGateway(doc)
	return New(tracker.NewService(gw), config.Default()), gw
}

// waitFor is a convenience wrapper around teatest.WaitFor with a standard timeout.
func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(text))
	}, teatest.WithDuration(5*time.Second))
}

func sendText(tm *teatest.TestModel, s string) {
	for _, r := range s {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// --- End-to-end tests ---
// These launch the real Bubble Tea program in a headless virtual terminal,
// send actual keystrokes, and assert on the rendered screen output.

func TestE2E_GridOnStartup(t *testing.T) {
	app, _ := newE2EApp(t, fixtureDocument())
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "SURVEY GRID")
	waitFor(t, tm, "Lovapine")
}

func TestE2E_EmptyStore(t *testing.T) {
	app, _ := newE2EApp(t, models.EmptyDocument())
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "No resource data detected in sector.")

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	waitFor(t, tm, "Stockroom empty.")
}

func TestE2E_SwitchToStockroom(t *testing.T) {
	app, _ := newE2EApp(t, fixtureDocument())
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "SURVEY GRID")

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("=== STOCKROOM ===")) &&
			bytes.Contains(bts, []byte("1,500 kg"))
	}, teatest.WithDuration(5*time.Second))
}

func TestE2E_HelpScreenAndBack(t *testing.T) {
	app, _ := newE2EApp(t, fixtureDocument())
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "SURVEY GRID")

	tm.Send(tea.KeyMsg{Type: tea.KeyF1})
	waitFor(t, tm, "Press Esc to return")

	tm.Send(tea.KeyMsg{Type: tea.KeyEscape})
	waitFor(t, tm, "SURVEY GRID")
}

func TestE2E_QuitFlow(t *testing.T) {
	app, _ := newE2EApp(t, fixtureDocument())
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 40))

	waitFor(t, tm, "SURVEY GRID")

	// Press q → confirm dialog
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	waitFor(t, tm, "CONFIRM EXIT")

	// Press y → quit
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	m := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := m.(*App)
	if !ok {
		t.Fatal("expected *App final model")
	}
	if !final.quitting {
		t.Error("expected app to be quitting")
	}
}

func TestE2E_AddResourceFlow(t *testing.T) {
	app, gw := newE2EApp(t, fixtureDocument())
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 50))

	waitFor(t, tm, "SURVEY GRID")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	waitFor(t, tm, "LOG NEW RESOURCE")

	sendText(tm, "Dunapine")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	waitFor(t, tm, "Resource Dunapine logged")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	doc := gw.Document()
	if len(doc.Resources) != 3 {
		t.Errorf("expected 3 stored resources, got %d", len(doc.Resources))
	}
}

func TestE2E_PersistFailureAlert(t *testing.T) {
	app, gw := newE2EApp(t, fixtureDocument())
	gw.FailSaves(true)
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "Lovapine")

	tm.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	waitFor(t, tm, "WARNING: Failed to save spawn status")
}

func TestE2E_SearchFlow(t *testing.T) {
	app, _ := newE2EApp(t, fixtureDocument())
	tm := teatest.NewTestModel(t, app, teatest.WithInitialTermSize(160, 40))

	waitFor(t, tm, "SURVEY GRID")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	waitFor(t, tm, "SEARCH:")

	sendText(tm, "ozz")
	waitFor(t, tm, "QUERY: ozz")

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	final := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second)).(*App)
	if got := len(final.gridView.Rows()); got != 1 {
		t.Errorf("expected 1 matching row, got %d", got)
	}
}
