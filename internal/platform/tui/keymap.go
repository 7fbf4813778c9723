package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for a game session. It implements
// help.KeyMap so the help bar can render itself from the bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Restart  key.Binding
	Breakout key.Binding
	HarderAI key.Binding
	EasierAI key.Binding
	Music    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Breakout, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Restart},
		{k.Breakout, k.HarderAI, k.EasierAI},
		{k.Music, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "move down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Breakout: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "breakout mode"),
		),
		HarderAI: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "harder AI"),
		),
		EasierAI: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "easier AI"),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "music"),
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
}
