// Package tui implements the interactive catalog browser.
package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextGroup  key.Binding
	PrevGroup  key.Binding
	ToggleDark key.Binding
	NextTheme  key.Binding
	PrevTheme  key.Binding
	Quit       key.Binding
}

var browserKeys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextGroup:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next group")),
	PrevGroup:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("⇧tab", "prev group")),
	ToggleDark: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark/light")),
	NextTheme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
	PrevTheme:  key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "prev theme")),
	Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}
