package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// It helps in managing and displaying help information.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Copy       key.Binding
	CopyAll    key.Binding
	NewKeyword key.Binding
	ToggleLog  key.Binding
	ToggleDark key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Input mode bindings, shown while typing a keyword.
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous swatch"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next swatch"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "jump to swatch"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy hex"),
		),
		CopyAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy all five"),
		),
		NewKeyword: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new keyword"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dark/light mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "resolve keyword"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// FullHelp returns bindings for the expanded help footer.
// It's a slice of slices, where each inner slice is a column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},                   // Navigation column
		{k.Copy, k.CopyAll, k.NewKeyword},           // Actions column
		{k.Help, k.ToggleLog, k.ToggleDark, k.Quit}, // UI/General column
	}
}

// ShortHelp returns a minimal set of bindings for the collapsed footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.NewKeyword, k.Help, k.Quit}
}
