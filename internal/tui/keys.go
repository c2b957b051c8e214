package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Navigation
	Up       Key
	Down     Key
	PageUp   Key
	PageDown Key
	Home     Key
	End      Key

	// Sort header
	SortLeft  Key
	SortRight Key
	SortApply Key

	// Tabs
	NextTab   Key
	Grid      Key
	Stockroom Key

	// Filters
	Search   Key
	Planet   Key
	Spawn    Key
	Category Key
	Reset    Key

	// Records
	Add    Key
	Edit   Key
	Toggle Key
	Delete Key

	// Application
	Theme Key
	Help  Key
	Back  Key
	Quit  Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

func bind(help string, keys ...string) Key {
	return Key{Keys: keys, Help: help, Enabled: true}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       bind("up", "up", "k"),
		Down:     bind("down", "down", "j"),
		PageUp:   bind("page up", "pgup", "ctrl+u"),
		PageDown: bind("page down", "pgdown", "ctrl+d"),
		Home:     bind("top", "home", "g"),
		End:      bind("bottom", "end", "G"),

		SortLeft:  bind("prev column", "left", "h"),
		SortRight: bind("next column", "right", "l"),
		SortApply: bind("sort", "enter"),

		NextTab:   bind("switch tab", "tab"),
		Grid:      bind("survey grid", "1"),
		Stockroom: bind("stockroom", "2"),

		Search:   bind("search", "/"),
		Planet:   bind("planet", "p"),
		Spawn:    bind("spawn", "s"),
		Category: bind("category", "c"),
		Reset:    bind("reset filters", "r"),

		Add:    bind("add", "a"),
		Edit:   bind("edit", "e"),
		Toggle: bind("toggle spawn", " "),
		Delete: bind("delete", "d", "delete"),

		Theme: bind("cycle skin", "t"),
		Help:  bind("help", "?", "f1"),
		Back:  bind("back", "esc"),
		Quit:  bind("quit", "q", "ctrl+c"),
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message is a quit command.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg)
}

// IsNavigation checks if the key message is a row navigation key.
func (km KeyMap) IsNavigation(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.Up, km.Down, km.PageUp, km.PageDown, km.Home, km.End)
}

// StatusBarHelp returns the help text for the status bar of a tab.
func (km KeyMap) StatusBarHelp(module Module, compact bool) string {
	if compact {
		return "[?]Help [Tab]Switch [a]Add [d]Del [q]Quit"
	}
	if module == ModuleStockroom {
		return "[?]Help [Tab]Grid [/]Search [←→⏎]Sort [a]Log [e]Qty [d]Delete [t]Skin [q]Quit"
	}
	return "[?]Help [Tab]Stock [/]Search [p/s/c/r]Filter [←→⏎]Sort [a]Add [e]Edit [Space]Spawn [d]Delete [t]Skin [q]Quit"
}
