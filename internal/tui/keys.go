package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	First key.Binding
	Prev  key.Binding
	Next  key.Binding
	Last  key.Binding
	Seek  key.Binding
	Run   key.Binding
	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	First: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "first"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l", " "),
		key.WithHelp("→/l/space", "next"),
	),
	Last: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "last"),
	),
	Seek: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "go to step"),
	),
	Run: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run to end"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.First, k.Prev, k.Next, k.Last},
		{k.Seek, k.Run, k.Reset},
		{k.Help, k.Quit},
	}
}
