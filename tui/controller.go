package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"strummy/debug"
)

// Size used until the terminal reports its real size
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Controller owns the screen stack and the app state. It is the program's
// tea.Model: bubbletea drives the read/render loop and holds the terminal in
// raw alt-screen mode until Run returns, on every exit path.
type Controller struct {
	State    *AppState
	stack    []Screen
	width    int
	height   int
	quitting bool
}

// NewController starts with root as the only screen
func NewController(state *AppState, root Screen) *Controller {
	return &Controller{
		State:  state,
		stack:  []Screen{root},
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// New builds the controller with the main pattern screen at the bottom
func New(state *AppState) *Controller {
	return NewController(state, NewMainScreen())
}

// Depth returns the number of screens on the stack
func (c *Controller) Depth() int {
	return len(c.stack)
}

// Top returns the visible screen, or nil once the stack is empty
func (c *Controller) Top() Screen {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Done reports whether the loop has ended
func (c *Controller) Done() bool {
	return c.quitting
}

// Dispatch sends one input event to the top screen and applies whatever it
// returns. Release events are dropped. Returns true when the program should
// exit.
func (c *Controller) Dispatch(ev KeyEvent) bool {
	if c.quitting {
		return true
	}
	if ev.Kind == KeyRelease {
		return false
	}

	top := c.Top()
	if top == nil {
		c.quitting = true
		return true
	}

	cmd := top.HandleKey(ev.Key, c.State)
	if cmd == nil {
		return false
	}
	return c.Apply(cmd)
}

// Apply changes the stack as cmd says. Returns true when the program should
// exit.
func (c *Controller) Apply(cmd Command) bool {
	if len(c.stack) == 0 {
		c.quitting = true
		return true
	}

	switch cmd := cmd.(type) {
	case Close:
		c.stack[len(c.stack)-1] = nil
		c.stack = c.stack[:len(c.stack)-1]
		debug.Log("nav", "close depth=%d", len(c.stack))
		if len(c.stack) == 0 {
			c.quitting = true
		}

	case Push:
		if cmd.Screen == nil {
			debug.Log("nav", "push ignored: nil screen")
			return false
		}
		c.stack = append(c.stack, cmd.Screen)
		debug.Log("nav", "push %T depth=%d", cmd.Screen, len(c.stack))

	case Swap:
		if cmd.Screen == nil {
			debug.Log("nav", "swap ignored: nil screen")
			return false
		}
		c.stack[len(c.stack)-1] = cmd.Screen
		debug.Log("nav", "swap %T depth=%d", cmd.Screen, len(c.stack))

	case Quit:
		debug.Log("nav", "quit confirmed=%v depth=%d", cmd.Confirmed, len(c.stack))
		c.quitting = true

	default:
		panic(fmt.Sprintf("tui: unknown command %T", cmd))
	}

	return c.quitting
}

func (c *Controller) Init() tea.Cmd {
	return nil
}

func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height

	case tea.KeyMsg:
		if c.Dispatch(Press(msg)) {
			return c, tea.Quit
		}
	}

	return c, nil
}

// View renders only the top screen, full redraw every frame
func (c *Controller) View() string {
	if c.quitting {
		return ""
	}
	top := c.Top()
	if top == nil {
		return ""
	}
	return top.View(c.State, c.width, c.height)
}
