package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"strummy/widgets"
)

type mainKeys struct {
	Quit  key.Binding
	New   key.Binding
	Edit  key.Binding
	Leave key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Mute  key.Binding
	Miss  key.Binding
	Save  key.Binding
	Load  key.Binding
	Help  key.Binding
}

func newMainKeys() mainKeys {
	return mainKeys{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		New:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new pattern")),
		Edit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Leave: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous slot")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next slot")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up stroke")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down stroke")),
		Mute:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "mute")),
		Miss:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "miss")),
		Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Load:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "load")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
	}
}

// ShortHelp is the footer while browsing
func (k mainKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.New, k.Save, k.Load, k.Help, k.Quit}
}

// FullHelp is the footer while editing
func (k mainKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Leave},
		{k.Up, k.Down, k.Mute, k.Miss},
	}
}

// Sections groups every binding for the help screen
func (k mainKeys) Sections() []widgets.KeySection {
	group := func(title string, bs ...key.Binding) widgets.KeySection {
		sec := widgets.KeySection{Title: title}
		for _, b := range bs {
			h := b.Help()
			sec.Keys = append(sec.Keys, widgets.KeyBinding{Key: h.Key, Desc: h.Desc})
		}
		return sec
	}
	return []widgets.KeySection{
		group("Pattern", k.New, k.Save, k.Load),
		group("Edit", k.Edit, k.Left, k.Right, k.Leave),
		group("Strokes", k.Down, k.Up, k.Mute, k.Miss),
		group("App", k.Help, k.Quit),
	}
}

type helpKeys struct {
	Close key.Binding
	Quit  key.Binding
}

func newHelpKeys() helpKeys {
	return helpKeys{
		Close: key.NewBinding(key.WithKeys("esc", "q", "?"), key.WithHelp("esc", "back")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Quit}
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
