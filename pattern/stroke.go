package pattern

import (
	"errors"
	"fmt"
)

// Stroke is a single strum action
type Stroke uint8

const (
	Down Stroke = iota
	Up
	Mute
	Miss
)

// Strokes lists every stroke in sampling order
var Strokes = [...]Stroke{Down, Up, Mute, Miss}

var ErrUnknownStroke = errors.New("unknown stroke")

var strokeNames = [...]string{
	Down: "Down",
	Up:   "Up",
	Mute: "Mute",
	Miss: "Miss",
}

var strokeShorthand = [...]string{
	Down: "D",
	Up:   "U",
	Mute: "x",
	Miss: "-",
}

// Shorthand returns the single character display form
func (s Stroke) Shorthand() string {
	if int(s) < len(strokeShorthand) {
		return strokeShorthand[s]
	}
	return "?"
}

func (s Stroke) String() string {
	if int(s) < len(strokeNames) {
		return strokeNames[s]
	}
	return fmt.Sprintf("Stroke(%d)", uint8(s))
}

// MarshalText writes the tag used in pattern files ("Down", "Up", ...)
func (s Stroke) MarshalText() ([]byte, error) {
	if int(s) >= len(strokeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStroke, uint8(s))
	}
	return []byte(strokeNames[s]), nil
}

// UnmarshalText parses a pattern file tag
func (s *Stroke) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range strokeNames {
		if n == name {
			*s = Stroke(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStroke, name)
}
