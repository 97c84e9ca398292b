package pattern

import "errors"

var ErrEmptyPattern = errors.New("pattern is empty")

// Cursor is the edit position inside a pattern. The zero value is inactive.
// Every method takes the current pattern length so the cursor never holds an
// index the pattern does not have.
type Cursor struct {
	index  int
	active bool
}

// Active reports whether editing is on
func (c Cursor) Active() bool {
	return c.active
}

// Index returns the slot under the cursor and whether the cursor is active
func (c Cursor) Index() (int, bool) {
	return c.index, c.active
}

// At reports whether the cursor is active on slot i
func (c Cursor) At(i int) bool {
	return c.active && c.index == i
}

// Enter starts editing at slot 0. An already active cursor is left alone.
// Returns ErrEmptyPattern when there is nothing to edit.
func (c *Cursor) Enter(length int) error {
	if length <= 0 {
		c.Escape()
		return ErrEmptyPattern
	}
	if !c.active {
		c.index = 0
		c.active = true
	}
	return nil
}

// Right moves one slot forward, wrapping to 0 past the end
func (c *Cursor) Right(length int) {
	if !c.valid(length) {
		return
	}
	c.index = (c.index + 1) % length
}

// Left moves one slot back, wrapping to the last slot before 0
func (c *Cursor) Left(length int) {
	if !c.valid(length) {
		return
	}
	if c.index == 0 {
		c.index = length - 1
	} else {
		c.index--
	}
}

// Assign writes s under the cursor. No-op while inactive.
func (c *Cursor) Assign(p *Pattern, s Stroke) bool {
	if !c.valid(p.Len()) {
		return false
	}
	p.SetStroke(c.index, s)
	return true
}

// Escape leaves edit mode
func (c *Cursor) Escape() {
	c.index = 0
	c.active = false
}

// valid drops the cursor if it no longer fits the pattern
func (c *Cursor) valid(length int) bool {
	if !c.active {
		return false
	}
	if c.index < 0 || c.index >= length {
		c.Escape()
		return false
	}
	return true
}
