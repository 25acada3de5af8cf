package main

import "github.com/charmbracelet/bubbles/key"

// appKeys are the bindings handled by the app itself, before calculator
// keys are resolved through pkg/keymap.
type appKeys struct {
	Quit key.Binding
	Help key.Binding
}

func newAppKeys() appKeys {
	return appKeys{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
