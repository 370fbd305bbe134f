package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the page keybindings. Scrolling is delegated to the
// viewport's own key map.
type keyMap struct {
	Scroll     key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	NextCard   key.Binding
	PrevCard   key.Binding
	Open       key.Binding
	Contact    key.Binding
	Theme      key.Binding
	Replay     key.Binding
	Palette    key.Binding
	Close      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view (single line).
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Palette, k.Theme, k.Contact, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view (multiple columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Palette, k.Help},
		{k.NextFilter, k.PrevFilter, k.NextCard, k.PrevCard, k.Open},
		{k.Contact, k.Theme, k.Replay, k.Close, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"),
		key.WithHelp("j/k", "scroll"),
	),
	NextFilter: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next filter"),
	),
	PrevFilter: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev filter"),
	),
	NextCard: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next project"),
	),
	PrevCard: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev project"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "project details"),
	),
	Contact: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "contact"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Replay: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "replay greeting"),
	),
	Palette: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "commands"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "x"),
		key.WithHelp("esc/x", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
