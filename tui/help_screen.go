package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"strummy/widgets"
)

// HelpScreen lists key bindings over the screen that opened it
type HelpScreen struct {
	sections []widgets.KeySection
	keys     helpKeys
	help     help.Model
}

func NewHelpScreen(sections []widgets.KeySection) *HelpScreen {
	return &HelpScreen{
		sections: sections,
		keys:     newHelpKeys(),
		help:     help.New(),
	}
}

func (s *HelpScreen) HandleKey(msg tea.KeyMsg, st *AppState) Command {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return Quit{}
	case key.Matches(msg, s.keys.Close):
		return Close{}
	}
	return nil
}

func (s *HelpScreen) View(st *AppState, width, height int) string {
	body := lipgloss.NewStyle().
		Foreground(st.Theme().FG()).
		Render(widgets.RenderKeyHelp(s.sections))

	h := s.help
	h.Width = width
	return renderPanel(st.Theme(), "Keys", body, h.View(s.keys), width, height)
}
