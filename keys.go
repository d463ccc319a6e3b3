package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit       key.Binding
	PageLeft   key.Binding
	PageRight  key.Binding
	ResetRange key.Binding
	SetRange   key.Binding
	Export     key.Binding
	CopyRange  key.Binding
	OpenHelp   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	PageLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "page selection left"),
	),
	PageRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "page selection right"),
	),
	ResetRange: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset selection to all bins"),
	),
	SetRange: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "type an exact range"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export selected bins to CSV"),
	),
	CopyRange: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy range to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.PageLeft,
		k.PageRight,
		k.ResetRange,
		k.SetRange,
		k.Export,
		k.CopyRange,
		k.OpenHelp,
	}
}
