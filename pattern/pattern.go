package pattern

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Pattern is a fixed-length strumming cycle. Slots can be overwritten but
// never inserted or removed.
type Pattern struct {
	strokes []Stroke
}

// New returns a pattern holding a copy of strokes
func New(strokes ...Stroke) *Pattern {
	p := &Pattern{strokes: make([]Stroke, len(strokes))}
	copy(p.strokes, strokes)
	return p
}

// Generate fills length slots by sampling each one uniformly from Strokes
func Generate(r *rand.Rand, length int) *Pattern {
	if length < 0 {
		length = 0
	}
	p := &Pattern{strokes: make([]Stroke, length)}
	for i := range p.strokes {
		p.strokes[i] = Strokes[r.IntN(len(Strokes))]
	}
	return p
}

// Len returns the slot count
func (p *Pattern) Len() int {
	return len(p.strokes)
}

// Stroke returns slot i. Panics if i is out of range.
func (p *Pattern) Stroke(i int) Stroke {
	p.mustIndex(i)
	return p.strokes[i]
}

// SetStroke overwrites slot i. Callers validate i through a Cursor, so an
// out of range index is a bug and panics.
func (p *Pattern) SetStroke(i int, s Stroke) {
	p.mustIndex(i)
	p.strokes[i] = s
}

// Strokes returns a copy of the slots in order
func (p *Pattern) Strokes() []Stroke {
	out := make([]Stroke, len(p.strokes))
	copy(out, p.strokes)
	return out
}

// Equal reports whether both patterns hold the same strokes
func (p *Pattern) Equal(o *Pattern) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.strokes) != len(o.strokes) {
		return false
	}
	for i := range p.strokes {
		if p.strokes[i] != o.strokes[i] {
			return false
		}
	}
	return true
}

// Shorthand renders the pattern as space separated shorthand, e.g. "D U x -"
func (p *Pattern) Shorthand() string {
	parts := make([]string, len(p.strokes))
	for i, s := range p.strokes {
		parts[i] = s.Shorthand()
	}
	return strings.Join(parts, " ")
}

func (p *Pattern) String() string {
	return p.Shorthand()
}

func (p *Pattern) mustIndex(i int) {
	if i < 0 || i >= len(p.strokes) {
		panic(fmt.Sprintf("pattern: index %d out of range [0,%d)", i, len(p.strokes)))
	}
}
