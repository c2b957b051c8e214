package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/swgrt/swgrt/internal/config"
	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/storage"
)

// fixtureDocument returns a small survey with one stock entry.
func fixtureDocument() models.Document {
	ts := models.NewTimestamp(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return models.Document{
		Resources: []models.Resource{
			{ID: "r1", Name: "Lovapine", Planet: "Naboo", Category: models.CategoryMineral, Type: "Metal",
				InSpawn: true, Stats: models.Stats{models.AttrOQ: 920}, Timestamp: ts},
			{ID: "r2", Name: "Ozzalite", Planet: "Tatooine", Category: models.CategoryFlora, Type: "Flora",
				InSpawn: false, Stats: models.Stats{models.AttrOQ: 300}, Timestamp: models.NewTimestamp(ts.Add(-time.Hour))},
		},
		Inventory: []models.InventoryItem{
			{ID: "i1", ResourceName: "Lovapine", Quantity: 1500, Timestamp: ts},
		},
	}
}

// newTestApp creates an App backed by an in-memory gateway holding doc.
// The document is loaded, the window is set to 160x40 and marked ready.
func newTestApp(t *testing.T, doc models.Document) (*App, *storage.MemoryGateway) {
	t.Helper()

	gw := storage.NewMemoryGateway(doc)
	svc := tracker.NewService(gw)

	app := New(svc, config.Default())
	app.Update(dataLoadedMsg{doc: svc.Load(context.Background())})

	// Simulate a window size message to make the app ready
	app.Update(tea.WindowSizeMsg{Width: 160, Height: 40})

	return app, gw
}

// run executes cmd and feeds its message back into the app, as the program
// loop would.
func run(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	app.Update(cmd())
}

// keyMsg creates a tea.KeyMsg for a regular character key.
func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// specialKeyMsg creates a tea.KeyMsg for a special key type.
func specialKeyMsg(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// typeKeys sends every rune of s as a key press.
func typeKeys(app *App, s string) {
	for _, r := range s {
		app.Update(keyMsg(string(r)))
	}
}
