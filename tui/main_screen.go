package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"strummy/debug"
	"strummy/pattern"
	"strummy/widgets"
)

const mainTitle = "Strumming Practice Tool"

// MainScreen shows the working pattern and edits it slot by slot
type MainScreen struct {
	cursor pattern.Cursor

	// state revision the cursor was placed under
	revision int

	keys mainKeys
	help help.Model

	notice    string
	noticeBad bool
}

func NewMainScreen() *MainScreen {
	return &MainScreen{
		keys: newMainKeys(),
		help: help.New(),
	}
}

// Cursor returns the edit cursor as of the last handled key
func (s *MainScreen) Cursor() pattern.Cursor {
	return s.cursor
}

// Notice returns the status line text and whether it reports a failure
func (s *MainScreen) Notice() (string, bool) {
	return s.notice, s.noticeBad
}

func (s *MainScreen) HandleKey(msg tea.KeyMsg, st *AppState) Command {
	s.sync(st)
	s.notice, s.noticeBad = "", false

	p := st.Pattern()
	switch {
	case key.Matches(msg, s.keys.Quit):
		return Quit{Confirmed: true}

	case key.Matches(msg, s.keys.Help):
		return Push{Screen: NewHelpScreen(s.keys.Sections())}

	case key.Matches(msg, s.keys.New):
		st.Regenerate()
		s.cursor.Escape()

	case key.Matches(msg, s.keys.Save):
		if err := st.Save(); err != nil {
			s.fail("save failed: %v", err)
		} else {
			s.info("saved %s", st.PatternFile())
		}

	case key.Matches(msg, s.keys.Load):
		if err := st.Load(); err != nil {
			s.fail("load failed: %v", err)
		} else {
			s.cursor.Escape()
			s.info("loaded %s", st.PatternFile())
		}

	case key.Matches(msg, s.keys.Edit):
		if err := s.cursor.Enter(p.Len()); err != nil {
			s.fail("nothing to edit: %v", err)
			return nil
		}
		s.revision = st.Revision()
		debug.Log("edit", "enter")

	case key.Matches(msg, s.keys.Leave):
		s.cursor.Escape()
		debug.Log("edit", "escape")

	case key.Matches(msg, s.keys.Right):
		s.cursor.Right(p.Len())

	case key.Matches(msg, s.keys.Left):
		s.cursor.Left(p.Len())

	case key.Matches(msg, s.keys.Up):
		s.cursor.Assign(p, pattern.Up)

	case key.Matches(msg, s.keys.Down):
		s.cursor.Assign(p, pattern.Down)

	case key.Matches(msg, s.keys.Mute):
		s.cursor.Assign(p, pattern.Mute)

	case key.Matches(msg, s.keys.Miss):
		s.cursor.Assign(p, pattern.Miss)
	}

	if idx, ok := s.cursor.Index(); ok {
		debug.Log("edit", "cursor=%d pattern=%q", idx, p.Shorthand())
	}
	return nil
}

// sync drops the cursor if another screen or command replaced the pattern
func (s *MainScreen) sync(st *AppState) {
	if s.cursor.Active() && s.revision != st.Revision() {
		debug.Log("edit", "pattern replaced, cursor reset")
		s.cursor.Escape()
	}
}

func (s *MainScreen) View(st *AppState, width, height int) string {
	th := st.Theme()
	p := st.Pattern()

	cursor := -1
	if idx, ok := s.cursor.Index(); ok && s.revision == st.Revision() && idx < p.Len() {
		cursor = idx
	}

	var body string
	if p.Len() == 0 {
		body = lipgloss.NewStyle().Foreground(th.Muted()).Render("(empty pattern)")
	} else {
		cells := make([]string, p.Len())
		for i, stroke := range p.Strokes() {
			cells[i] = stroke.Shorthand()
		}
		ruler, row := widgets.RenderSlotRows(widgets.BeatLabels(p.Len()), cells, cursor, widgets.RowStyles{
			Normal: lipgloss.NewStyle().Foreground(th.FG()),
			Cursor: lipgloss.NewStyle().Foreground(th.Cursor()).Bold(true),
		})
		body = lipgloss.JoinVertical(lipgloss.Center, ruler, "", row)
	}

	return renderPanel(th, mainTitle, body, s.footer(st, width, cursor >= 0), width, height)
}

func (s *MainScreen) footer(st *AppState, width int, editing bool) string {
	if s.notice != "" {
		color := st.Theme().FG()
		if s.noticeBad {
			color = st.Theme().Warning()
		}
		return lipgloss.NewStyle().Foreground(color).Render(s.notice)
	}

	h := s.help
	h.Width = width
	if editing {
		var bindings []key.Binding
		for _, group := range s.keys.FullHelp() {
			bindings = append(bindings, group...)
		}
		return h.ShortHelpView(bindings)
	}
	return h.View(s.keys)
}

func (s *MainScreen) info(format string, args ...any) {
	s.notice, s.noticeBad = fmt.Sprintf(format, args...), false
}

func (s *MainScreen) fail(format string, args ...any) {
	s.notice, s.noticeBad = fmt.Sprintf(format, args...), true
}
