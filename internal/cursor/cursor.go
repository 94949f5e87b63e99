// Package cursor tracks the keyboard selection position on a board.
package cursor

import "lifegrid/internal/core"

// Direction identifies a unit cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

func (d Direction) offset() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Cursor is a single tracked coordinate, independent of cell state. It
// starts at the origin and every move is checked against the paired board's
// bounds, so it is never out of range.
type Cursor struct {
	x, y int
}

// New returns a cursor at (0, 0).
func New() *Cursor { return &Cursor{} }

// X returns the cursor column.
func (c *Cursor) X() int { return c.x }

// Y returns the cursor row.
func (c *Cursor) Y() int { return c.y }

// Position returns the cursor coordinate.
func (c *Cursor) Position() (int, int) { return c.x, c.y }

// Move applies a unit offset in the given direction. A move that would
// leave bounds is absorbed; the cursor never wraps and never errors.
func (c *Cursor) Move(dir Direction, bounds core.Size) {
	dx, dy := dir.offset()
	nx, ny := c.x+dx, c.y+dy
	if !bounds.Contains(nx, ny) {
		return
	}
	c.x, c.y = nx, ny
}
