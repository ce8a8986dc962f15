package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SwitchCalendar key.Binding
	Left           key.Binding
	Right          key.Binding
	Up             key.Binding
	Down           key.Binding
	Select         key.Binding
	NextMonth      key.Binding
	PrevMonth      key.Binding
	Preset         key.Binding
	Save           key.Binding
	Help           key.Binding
	Quit           key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SwitchCalendar: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch calendar")),
		Left:           key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:          key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Select:         key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		NextMonth:      key.NewBinding(key.WithKeys("n", "]"), key.WithHelp("n/]", "next month")),
		PrevMonth:      key.NewBinding(key.WithKeys("p", "["), key.WithHelp("p/[", "prev month")),
		Preset:         key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "preset")),
		Save:           key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save range")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchCalendar, k.Select, k.NextMonth, k.PrevMonth, k.Preset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.SwitchCalendar, k.Select, k.NextMonth, k.PrevMonth},
		{k.Preset, k.Save, k.Help, k.Quit},
	}
}

// savingKeys is the help shown while the label input is open.
type savingKeys struct{ k keyMap }

func (s savingKeys) ShortHelp() []key.Binding  { return []key.Binding{s.k.Confirm, s.k.Cancel} }
func (s savingKeys) FullHelp() [][]key.Binding { return [][]key.Binding{s.ShortHelp()} }
