package domain

// Cursor tracks the position of the shown card within an ordered view
type Cursor struct {
	index int
}

// NewCursor creates a cursor at index; negative values start at 0
func NewCursor(index int) Cursor {
	if index < 0 {
		index = 0
	}
	return Cursor{index: index}
}

// Index returns the current position
func (c Cursor) Index() int {
	return c.index
}

// Next moves forward, wrapping to the first card
func (c *Cursor) Next(length int) {
	if length <= 0 {
		return
	}
	c.index = (c.index + 1) % length
}

// Previous moves backward, wrapping to the last card
func (c *Cursor) Previous(length int) {
	if length <= 0 {
		return
	}
	c.index = (c.index - 1 + length) % length
}

// Reclamp keeps the index inside [0, length-1], or 0 for an empty view.
// It reports whether the index changed.
func (c *Cursor) Reclamp(length int) bool {
	old := c.index
	switch {
	case length <= 0:
		c.index = 0
	case c.index >= length:
		c.index = length - 1
	case c.index < 0:
		c.index = 0
	}
	return old != c.index
}
