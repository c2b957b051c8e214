package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/swgrt/swgrt/internal/config"
	"github.com/swgrt/swgrt/internal/models"
	"github.com/swgrt/swgrt/internal/services/tracker"
	"github.com/swgrt/swgrt/internal/tui/views/stockroom"
	"github.com/swgrt/swgrt/internal/tui/views/survey"
	"github.com/swgrt/swgrt/internal/util"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Module represents a view module in the application.
type Module string

const (
	ModuleGrid      Module = "grid"
	ModuleStockroom Module = "stockroom"
	ModuleHelp      Module = "help"
)

// App is the main Bubble Tea application model.
type App struct {
	// Dependencies
	svc    *tracker.Service
	config *config.Config

	// Views
	gridView      *survey.GridView
	resourceForm  *survey.ResourceForm
	inventoryView *stockroom.InventoryView
	inventoryForm *stockroom.InventoryForm

	// UI state
	theme       *Theme
	keys        KeyMap
	width       int
	height      int
	ready       bool
	loaded      bool
	quitting    bool
	showConfirm bool
	now         time.Time

	// Current view
	currentModule  Module
	previousModule Module
	searchMode     bool
	searchInput    string

	// Alerts
	alerts []Alert
}

// Alert represents a status line message.
type Alert struct {
	Level   AlertLevel
	Message string
	Time    time.Time
}

// AlertLevel indicates the severity of an alert.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertWarning
	AlertCritical
)

// tickMsg is sent periodically to refresh relative timestamps.
type tickMsg time.Time

type dataLoadedMsg struct {
	doc models.Document
}

type resourceSavedMsg struct {
	name string
	err  error
}

type inventorySavedMsg struct {
	name string
	err  error
}

type recordDeletedMsg struct {
	what string
	err  error
}

type spawnToggledMsg struct {
	resource models.Resource
	err      error
}

// New creates a new App instance.
func New(svc *tracker.Service, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		svc:           svc,
		config:        cfg,
		gridView:      survey.NewGridView(),
		inventoryView: stockroom.NewInventoryView(),
		theme:         NewTheme(ParseThemeName(cfg.Display.Theme)),
		keys:          DefaultKeyMap(),
		currentModule: ModuleGrid,
		alerts:        []Alert{},
		now:           time.Now(),
	}

	a.gridView.SetDateFormat(cfg.Display.DateFormat)
	a.inventoryView.SetDateFormat(cfg.Display.DateFormat)
	a.gridView.SetNow(a.now)
	a.inventoryView.SetNow(a.now)
	a.applyTheme()

	if !svc.Persistent() {
		a.AddAlert(AlertWarning, "Storage unavailable, records will not be saved")
	}

	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tickCmd(),
		a.loadData(),
	)
}

// tickCmd returns a command that sends tick messages.
func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadData reads the stored document through the service.
func (a *App) loadData() tea.Cmd {
	return func() tea.Msg {
		return dataLoadedMsg{doc: a.svc.Load(context.Background())}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.updateViewDimensions()
		return a, nil

	case tickMsg:
		a.now = time.Time(msg)
		a.gridView.SetNow(a.now)
		a.inventoryView.SetNow(a.now)
		return a, tickCmd()

	case dataLoadedMsg:
		a.loaded = true
		a.setData(msg.doc)
		return a, nil

	case resourceSavedMsg:
		a.refreshData()
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to save resource "+msg.name+": "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Resource "+msg.name+" logged")
		}
		return a, nil

	case inventorySavedMsg:
		a.refreshData()
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to save stock "+msg.name+": "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Stock "+msg.name+" updated")
		}
		return a, nil

	case recordDeletedMsg:
		a.refreshData()
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to delete "+msg.what+": "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, "Deleted "+msg.what)
		}
		return a, nil

	case spawnToggledMsg:
		a.refreshData()
		if msg.err != nil {
			a.AddAlert(AlertWarning, "Failed to save spawn status of "+msg.resource.Name+": "+msg.err.Error())
		} else {
			a.AddAlert(AlertInfo, msg.resource.Name+" is now "+msg.resource.SpawnLabel())
		}
		return a, nil
	}

	return a, nil
}

func (a *App) setData(doc models.Document) {
	a.gridView.SetData(doc.Resources)
	a.inventoryView.SetData(doc.Inventory, doc.Resources)
}

// refreshData reloads both views from the service's memory.
func (a *App) refreshData() {
	a.setData(a.svc.Snapshot())
}

func (a *App) applyTheme() {
	p := a.theme.Palette()
	a.gridView.SetPalette(p)
	a.inventoryView.SetPalette(p)
	if a.resourceForm != nil {
		a.resourceForm.SetPalette(p)
	}
	if a.inventoryForm != nil {
		a.inventoryForm.SetPalette(p)
	}
}

// handleKeyPress processes key press events.
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle quit confirmation first (modal takes priority)
	if a.showConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.quitting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showConfirm = false
			return a, nil
		}
		return a, nil
	}

	// ctrl+c always asks, even inside a form
	if msg.Type == tea.KeyCtrlC {
		a.showConfirm = true
		return a, nil
	}

	// Handle form mode BEFORE global keys - form needs all input
	if a.resourceForm != nil {
		return a.handleResourceFormKeys(msg)
	}
	if a.inventoryForm != nil {
		return a.handleInventoryFormKeys(msg)
	}

	// Handle search mode BEFORE global keys - search needs text input
	if a.searchMode {
		return a.handleSearchKeys(msg)
	}

	// Global key bindings (only when not in input mode)
	if a.keys.IsQuit(msg) {
		a.showConfirm = true
		return a, nil
	}

	if a.keys.Help.Matches(msg) {
		if a.currentModule != ModuleHelp {
			a.previousModule = a.currentModule
			a.currentModule = ModuleHelp
		}
		return a, nil
	}

	if a.keys.Back.Matches(msg) {
		if a.currentModule == ModuleHelp && a.previousModule != "" {
			a.currentModule = a.previousModule
			a.previousModule = ""
		}
		return a, nil
	}

	if a.keys.Theme.Matches(msg) {
		a.theme = NewTheme(a.theme.Name.Next())
		a.applyTheme()
		return a, nil
	}

	switch {
	case a.keys.NextTab.Matches(msg):
		if a.currentModule == ModuleGrid {
			a.currentModule = ModuleStockroom
		} else {
			a.currentModule = ModuleGrid
		}
		return a, nil
	case a.keys.Grid.Matches(msg):
		a.currentModule = ModuleGrid
		return a, nil
	case a.keys.Stockroom.Matches(msg):
		a.currentModule = ModuleStockroom
		return a, nil
	}

	// Module-specific key handling
	switch a.currentModule {
	case ModuleGrid:
		return a.handleGridKeys(msg)
	case ModuleStockroom:
		return a.handleStockroomKeys(msg)
	}

	return a, nil
}

// handleGridKeys handles key presses on the survey grid.
func (a *App) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := a.gridView
	switch {
	case a.keys.Up.Matches(msg):
		v.MoveUp()
	case a.keys.Down.Matches(msg):
		v.MoveDown()
	case a.keys.PageUp.Matches(msg):
		v.PageUp()
	case a.keys.PageDown.Matches(msg):
		v.PageDown()
	case a.keys.Home.Matches(msg):
		v.GoToTop()
	case a.keys.End.Matches(msg):
		v.GoToBottom()
	case a.keys.SortLeft.Matches(msg):
		v.SortLeft()
	case a.keys.SortRight.Matches(msg):
		v.SortRight()
	case a.keys.SortApply.Matches(msg):
		v.ApplySort()
	case a.keys.Search.Matches(msg):
		a.searchMode = true
		a.searchInput = v.Filter().Search
	case a.keys.Planet.Matches(msg):
		v.CyclePlanet()
	case a.keys.Spawn.Matches(msg):
		v.CycleSpawn()
	case a.keys.Category.Matches(msg):
		v.CycleCategory()
	case a.keys.Reset.Matches(msg):
		v.ResetFilters()
	case a.keys.Add.Matches(msg):
		a.resourceForm = survey.NewResourceForm(survey.FormModeAdd)
		a.resourceForm.SetPalette(a.theme.Palette())
	case a.keys.Edit.Matches(msg):
		if r, ok := v.SelectedResource(); ok {
			a.resourceForm = survey.NewResourceForm(survey.FormModeEdit)
			a.resourceForm.SetResource(r)
			a.resourceForm.SetPalette(a.theme.Palette())
		}
	case a.keys.Toggle.Matches(msg):
		if r, ok := v.SelectedResource(); ok {
			return a, a.toggleSpawn(r)
		}
	case a.keys.Delete.Matches(msg):
		if r, ok := v.SelectedResource(); ok {
			return a, a.deleteResource(r)
		}
	}
	return a, nil
}

// handleStockroomKeys handles key presses in the stockroom.
func (a *App) handleStockroomKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := a.inventoryView
	switch {
	case a.keys.Up.Matches(msg):
		v.MoveUp()
	case a.keys.Down.Matches(msg):
		v.MoveDown()
	case a.keys.PageUp.Matches(msg):
		v.PageUp()
	case a.keys.PageDown.Matches(msg):
		v.PageDown()
	case a.keys.Home.Matches(msg):
		v.GoToTop()
	case a.keys.End.Matches(msg):
		v.GoToBottom()
	case a.keys.SortLeft.Matches(msg):
		v.SortLeft()
	case a.keys.SortRight.Matches(msg):
		v.SortRight()
	case a.keys.SortApply.Matches(msg):
		v.ApplySort()
	case a.keys.Search.Matches(msg):
		a.searchMode = true
		a.searchInput = v.Search()
	case a.keys.Add.Matches(msg):
		a.inventoryForm = stockroom.NewInventoryForm(v.ResourceNames())
		a.inventoryForm.SetPalette(a.theme.Palette())
	case a.keys.Edit.Matches(msg):
		if r, ok := v.SelectedRow(); ok {
			a.inventoryForm = stockroom.NewQuantityForm(r.Item)
			a.inventoryForm.SetPalette(a.theme.Palette())
		}
	case a.keys.Delete.Matches(msg):
		if r, ok := v.SelectedRow(); ok {
			return a, a.deleteInventoryItem(r.Item)
		}
	}
	return a, nil
}

// handleResourceFormKeys handles key presses in the resource form.
func (a *App) handleResourceFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.resourceForm.HandleKey(msg.String())

	if a.resourceForm.IsCancelled() {
		a.resourceForm = nil
		return a, nil
	}

	if a.resourceForm.IsSubmitted() {
		input, ok := a.resourceForm.Input()
		if !ok {
			a.resourceForm.ClearSubmitted()
			return a, nil
		}
		a.resourceForm = nil
		return a, a.saveResource(input)
	}

	return a, nil
}

// handleInventoryFormKeys handles key presses in the inventory form.
func (a *App) handleInventoryFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.inventoryForm.HandleKey(msg.String())

	if a.inventoryForm.IsCancelled() {
		a.inventoryForm = nil
		return a, nil
	}

	if a.inventoryForm.IsSubmitted() {
		input, ok := a.inventoryForm.Input()
		if !ok {
			a.inventoryForm.ClearSubmitted()
			return a, nil
		}
		name := ""
		if input.ResourceName != nil {
			name = *input.ResourceName
		} else if r, ok := a.inventoryView.SelectedRow(); ok {
			name = r.Item.ResourceName
		}
		a.inventoryForm = nil
		return a, a.saveInventoryItem(name, input)
	}

	return a, nil
}

// handleSearchKeys handles key presses in search mode. The filter follows
// every keystroke.
func (a *App) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		a.searchMode = false
		a.searchInput = ""
	case "enter":
		a.searchMode = false
		return a, nil
	case "backspace":
		if r := []rune(a.searchInput); len(r) > 0 {
			a.searchInput = string(r[:len(r)-1])
		}
	default:
		switch msg.Type {
		case tea.KeyRunes:
			a.searchInput += string(msg.Runes)
		case tea.KeySpace:
			a.searchInput += " "
		}
	}

	if a.currentModule == ModuleStockroom {
		a.inventoryView.SetSearch(a.searchInput)
	} else {
		a.gridView.SetSearch(a.searchInput)
	}
	return a, nil
}

// The mutating commands below change memory and refresh the views at once.
// Only the write runs in the returned command; its message raises the alert.

func (a *App) saveResource(input tracker.ResourceInput) tea.Cmd {
	r := a.svc.ApplyResource(input)
	a.refreshData()
	return a.persist(func(err error) tea.Msg {
		return resourceSavedMsg{name: r.Name, err: err}
	})
}

func (a *App) saveInventoryItem(name string, input tracker.InventoryInput) tea.Cmd {
	a.svc.ApplyInventoryItem(input)
	a.refreshData()
	return a.persist(func(err error) tea.Msg {
		return inventorySavedMsg{name: name, err: err}
	})
}

func (a *App) toggleSpawn(r models.Resource) tea.Cmd {
	if updated, ok := a.svc.ApplyToggleSpawn(r.ID); ok {
		r = updated
	}
	a.refreshData()
	return a.persist(func(err error) tea.Msg {
		return spawnToggledMsg{resource: r, err: err}
	})
}

func (a *App) deleteResource(r models.Resource) tea.Cmd {
	a.svc.RemoveResource(r.ID)
	a.refreshData()
	return a.persist(func(err error) tea.Msg {
		return recordDeletedMsg{what: "resource " + r.Name, err: err}
	})
}

func (a *App) deleteInventoryItem(item models.InventoryItem) tea.Cmd {
	a.svc.RemoveInventoryItem(item.ID)
	a.refreshData()
	return a.persist(func(err error) tea.Msg {
		return recordDeletedMsg{what: "stock " + item.ResourceName, err: err}
	})
}

func (a *App) persist(done func(error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return done(a.svc.Persist(context.Background()))
	}
}

func (a *App) screen() Screen {
	return Screen{Width: a.width, Height: a.height}
}

// updateViewDimensions fits the table row counts to the terminal height.
func (a *App) updateViewDimensions() {
	rows := a.screen().TableRows()
	a.gridView.SetVisibleRows(rows)
	a.inventoryView.SetVisibleRows(rows)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	if a.quitting {
		return a.theme.Title.Render("Closing survey link. Safe travels.")
	}

	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(a.renderAlertBar())
	b.WriteString("\n")

	contentHeight := a.screen().BodyHeight()
	if a.showConfirm {
		b.WriteString(a.renderConfirmDialog(contentHeight))
	} else {
		b.WriteString(a.renderContent(contentHeight))
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter())

	return b.String()
}

// renderHeader renders the top header bar.
func (a *App) renderHeader() string {
	title := fmt.Sprintf("SWG RESOURCE TRACKER v%s", Version)

	file := "(loading...)"
	if a.loaded {
		if path := a.svc.DataPath(); path != "" {
			file = "FILE: " + path
		} else {
			file = "FILE: (not saved)"
		}
	}
	info := fmt.Sprintf("SKIN: %s | %s", a.theme.Name.Label(), file)

	spacing := a.width - lipgloss.Width(title) - lipgloss.Width(info) - 4
	if spacing < 1 {
		spacing = 1
	}

	header := a.theme.Header.Render(title) +
		strings.Repeat(" ", spacing) +
		a.theme.Header.Render(info)

	return header + "\n" + a.theme.DrawDoubleLine(a.width)
}

// renderTabs renders the tab bar.
func (a *App) renderTabs() string {
	tabs := []struct {
		module Module
		label  string
	}{
		{ModuleGrid, "[1] SURVEY GRID"},
		{ModuleStockroom, "[2] STOCKROOM"},
	}

	active := a.currentModule
	if active == ModuleHelp {
		active = a.previousModule
	}

	parts := make([]string, len(tabs))
	for i, t := range tabs {
		style := a.theme.Tab
		if t.module == active {
			style = a.theme.TabActive
		}
		parts[i] = style.Render(t.label)
	}
	return strings.Join(parts, " ")
}

// renderAlertBar renders the latest alert.
func (a *App) renderAlertBar() string {
	timeStr := util.FormatDateTime(a.now, a.config.Display.DateFormat)

	var alertText string
	if len(a.alerts) > 0 {
		alert := a.alerts[0]
		switch alert.Level {
		case AlertCritical:
			alertText = a.theme.AlertCrit.Render("CRITICAL: " + alert.Message)
		case AlertWarning:
			alertText = a.theme.AlertWarn.Render("WARNING: " + alert.Message)
		default:
			alertText = a.theme.Alert.Render("INFO: " + alert.Message)
		}
	} else {
		alertText = a.theme.Muted.Render("SECTOR BROADCAST: ACTIVE")
	}

	return a.theme.Value.Render(timeStr) + a.theme.StatusDivider.Render() + alertText
}

// renderContent renders the main content area based on current module.
func (a *App) renderContent(height int) string {
	contentWidth := a.screen().ContentWidth()

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Top)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth)

	return style.Render(contentStyle.Render(a.getModuleContent(contentWidth, height)))
}

// getModuleContent returns the content for the current module.
func (a *App) getModuleContent(width, height int) string {
	switch {
	case a.resourceForm != nil:
		return a.resourceForm.Render(width)
	case a.inventoryForm != nil:
		return a.inventoryForm.Render(width)
	}

	switch a.currentModule {
	case ModuleStockroom:
		return a.searchBar() + a.inventoryView.Render(width, height)
	case ModuleHelp:
		return a.renderHelp(width)
	default:
		return a.searchBar() + a.gridView.Render(width, height)
	}
}

func (a *App) searchBar() string {
	if !a.searchMode {
		return ""
	}
	return a.theme.Label.Render("SEARCH: ") +
		a.theme.Accent.Render(a.searchInput) +
		a.theme.Accent.Render("_") + "\n\n"
}

// renderHelp renders the help screen.
func (a *App) renderHelp(width int) string {
	section := func(items [][2]string) string {
		var b strings.Builder
		for _, item := range items {
			b.WriteString(a.theme.Primary.Render(fmt.Sprintf("%-12s  %s", item[0], item[1])))
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	general := section([][2]string{
		{"Tab / 1 / 2", "Switch between Survey Grid and Stockroom"},
		{"Up/Down", "Select row (k/j)"},
		{"PgUp/PgDn", "Page (ctrl+u/ctrl+d)"},
		{"Left/Right", "Choose sort column"},
		{"Enter", "Sort by column, again to flip"},
		{"/", "Search by name"},
		{"t", "Cycle skin"},
		{"? / F1", "Help"},
		{"Esc", "Back/Cancel"},
		{"q", "Quit"},
	})
	grid := section([][2]string{
		{"p / s / c", "Cycle planet, spawn and category filters"},
		{"r", "Reset filters"},
		{"a / e", "Add or edit resource"},
		{"Space", "Toggle spawn status"},
		{"d", "Delete resource"},
	})
	stock := section([][2]string{
		{"a", "Log stock (ctrl+f completes the name)"},
		{"e", "Edit quantity"},
		{"d", "Delete stock entry"},
	})

	var b strings.Builder
	b.WriteString(a.theme.Title.Render("═══ HELP ═══"))
	b.WriteString("\n\n")
	b.WriteString(a.theme.Panel("CONTROLS", general, width))
	b.WriteString("\n")
	b.WriteString(a.theme.Panel("SURVEY GRID", grid, width))
	b.WriteString("\n")
	b.WriteString(a.theme.Panel("STOCKROOM", stock, width))
	b.WriteString("\n\n")
	b.WriteString(a.theme.Muted.Render("Press Esc to return"))
	return b.String()
}

// renderConfirmDialog renders the quit confirmation dialog.
func (a *App) renderConfirmDialog(height int) string {
	dialog := a.theme.Box.Render(
		a.theme.Title.Render("CONFIRM EXIT") + "\n\n" +
			a.theme.Base.Render("Close the resource tracker?") + "\n\n" +
			a.theme.Label.Render("[Y]es  [N]o"),
	)

	style := lipgloss.NewStyle().
		Width(a.width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return style.Render(dialog)
}

// renderFooter renders the bottom status bar.
func (a *App) renderFooter() string {
	separator := a.theme.DrawHorizontalLine(a.width)

	doc := a.svc.Snapshot()
	status := fmt.Sprintf("RESOURCES: %d/%d", len(a.gridView.Rows()), len(doc.Resources))
	if a.currentModule == ModuleStockroom || (a.currentModule == ModuleHelp && a.previousModule == ModuleStockroom) {
		status = fmt.Sprintf("STOCK ENTRIES: %d | TOTAL TONNAGE: %sT",
			len(doc.Inventory), util.FormatTonnage(tracker.Tonnage(doc.Inventory)))
	}

	compact := a.screen().Compact()
	help := a.keys.StatusBarHelp(a.currentModule, compact)

	return separator + "\n" +
		a.theme.Footer.Render(status) + a.theme.StatusDivider.Render() + a.theme.Footer.Render(help)
}

// AddAlert adds a new alert to the display.
func (a *App) AddAlert(level AlertLevel, message string) {
	a.alerts = append([]Alert{{
		Level:   level,
		Message: message,
		Time:    time.Now(),
	}}, a.alerts...)

	// Keep only last 10 alerts
	if len(a.alerts) > 10 {
		a.alerts = a.alerts[:10]
	}
}

// Run starts the TUI application.
func Run(ctx context.Context, svc *tracker.Service, cfg *config.Config) error {
	app := New(svc, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
