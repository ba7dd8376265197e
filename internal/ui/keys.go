package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right       key.Binding
	SelUp, SelDown              key.Binding
	SelLeft, SelRight           key.Binding
	Home, End, PageUp, PageDown key.Binding
	TabDown, TabUp              key.Binding
	Filter, NextMatch           key.Binding
	Help, Quit                  key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	SelUp:     key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
	SelDown:   key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),
	SelLeft:   key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
	SelRight:  key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
	Home:      key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("home", "line start")),
	End:       key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("end", "line end")),
	PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	TabDown:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "tab -1")),
	TabUp:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "tab +1")),
	Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
	NextMatch: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.NextMatch, k.TabDown, k.TabUp, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.SelUp, k.SelDown, k.SelLeft, k.SelRight},
		{k.Home, k.End, k.PageUp, k.PageDown},
		{k.TabDown, k.TabUp, k.Filter, k.NextMatch, k.Help, k.Quit},
	}
}
