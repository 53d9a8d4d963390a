package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Players     key.Binding
	NextPlayers key.Binding
	PrevPlayers key.Binding
	NextSeat    key.Binding
	PrevSeat    key.Binding
	Compact     key.Binding
	Percentage  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Players: key.NewBinding(
			key.WithKeys("2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("2-9", "players"),
		),
		NextPlayers: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "more players"),
		),
		PrevPlayers: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "fewer players"),
		),
		NextSeat: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j/tab", "next seat"),
		),
		PrevSeat: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "prev seat"),
		),
		Compact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compact"),
		),
		Percentage: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "percentage"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Players, k.NextSeat, k.Compact, k.Percentage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Players, k.NextPlayers, k.PrevPlayers},
		{k.NextSeat, k.PrevSeat},
		{k.Compact, k.Percentage},
		{k.Help, k.Quit},
	}
}
