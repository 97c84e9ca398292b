package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is one interactive view on the controller's stack. Only the top
// screen is rendered and receives keys.
type Screen interface {
	// View renders the screen into a width x height area. It must not
	// change st.
	View(st *AppState, width, height int) string

	// HandleKey reacts to one key press and may return a Command for the
	// controller. nil means stay on this screen.
	HandleKey(msg tea.KeyMsg, st *AppState) Command
}

// Command tells the controller how to change the screen stack
type Command interface {
	command()
}

// Close pops the current screen. Closing the last screen ends the program.
type Close struct{}

// Push opens Screen on top of the current one, which stays suspended below it
type Push struct {
	Screen Screen
}

// Swap replaces the current screen without growing the stack
type Swap struct {
	Screen Screen
}

// Quit ends the program regardless of stack depth. Confirmed is reserved for
// a dirty-state prompt and is not acted on yet.
type Quit struct {
	Confirmed bool
}

func (Close) command() {}
func (Push) command()  {}
func (Swap) command()  {}
func (Quit) command()  {}

// KeyKind distinguishes press from release on terminals that report both
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
)

// KeyEvent is one input event read from the terminal
type KeyEvent struct {
	Key  tea.KeyMsg
	Kind KeyKind
}

// Press wraps a bubbletea key message, which is always a press
func Press(msg tea.KeyMsg) KeyEvent {
	return KeyEvent{Key: msg, Kind: KeyPress}
}
