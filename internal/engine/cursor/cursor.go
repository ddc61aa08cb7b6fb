package cursor

import "fmt"

// Cursor is the logical cursor position. It is a plain value type.
type Cursor struct {
	Row    int
	Col    int
	Wanted int
}

// New returns a cursor at the origin.
func New() Cursor {
	return Cursor{}
}

// SetColumn moves to col on the current row and records it as the
// wanted column.
func (c *Cursor) SetColumn(col int) {
	if col < 0 {
		col = 0
	}
	c.Col = col
	c.Wanted = col
}

// MoveTo places the cursor at (row, col) and records col as wanted.
func (c *Cursor) MoveTo(row, col int) {
	if row < 0 {
		row = 0
	}
	c.Row = row
	c.SetColumn(col)
}

// MoveToRow moves vertically onto row, whose visible length is lineLen.
// The column becomes min(wanted, lineLen); the wanted column is kept.
func (c *Cursor) MoveToRow(row, lineLen int) {
	if row < 0 {
		row = 0
	}
	c.Row = row
	c.Col = min(c.Wanted, max(lineLen, 0))
}

// Clamp pulls the column back inside [0, lineLen] without touching the
// wanted column.
func (c *Cursor) Clamp(lineLen int) {
	c.Col = max(0, min(c.Col, lineLen))
}

// String returns a human-readable position.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d want %d)", c.Row, c.Col, c.Wanted)
}
