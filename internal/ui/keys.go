package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings.
type KeyMap struct {
	Find     key.Binding
	Manual   key.Binding
	Language key.Binding
	Help     key.Binding
	Quit     key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Find: key.NewBinding(
			key.WithKeys("enter", "f"),
			key.WithHelp("enter/f", "find nearby"),
		),
		Manual: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "type a location"),
		),
		Language: key.NewBinding(
			key.WithKeys("tab", "L"),
			key.WithHelp("tab", "language"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}
