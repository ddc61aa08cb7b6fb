// Package linecache tracks how many wrapped terminal rows each document
// line occupies at the current viewport width.
//
// The cache holds one height per document line, kept index-aligned with
// the document by the edit engine, plus a prefix-sum index used by the
// viewport for scroll and cursor math. Prefix sums are rebuilt in full on
// demand; at interactive document sizes a linear pass per frame is cheap.
package linecache

import (
	"fmt"

	"github.com/dshills/ledit/internal/engine/document"
)

// HeightFor returns the number of rows line wraps to at width.
// A width of zero or less disables wrapping.
func HeightFor(line []byte, width int) int {
	n := document.VisibleLength(line)
	if width <= 0 || n == 0 {
		return 1
	}
	return (n + width - 1) / width
}

// Cache is the per-line visual height cache.
type Cache struct {
	width   int
	heights []int
	prefix  []int
	stale   bool
}

// New creates an empty cache for the given viewport width.
func New(width int) *Cache {
	return &Cache{
		width:  width,
		prefix: []int{0},
	}
}

// Width returns the width heights are computed for.
func (c *Cache) Width() int {
	return c.width
}

// Len returns the number of cached lines.
func (c *Cache) Len() int {
	return len(c.heights)
}

// Height returns the visual height of row. The virtual line past the end
// of the document occupies a single row.
func (c *Cache) Height(row int) int {
	if row < 0 || row >= len(c.heights) {
		return 1
	}
	return c.heights[row]
}

// Heights returns a copy of all cached heights.
func (c *Cache) Heights() []int {
	out := make([]int, len(c.heights))
	copy(out, c.heights)
	return out
}

// Set recomputes the height of row from line. Setting row == Len appends
// a new entry, mirroring promotion of the virtual line.
func (c *Cache) Set(row int, line []byte) error {
	switch {
	case row >= 0 && row < len(c.heights):
		c.heights[row] = HeightFor(line, c.width)
	case row == len(c.heights):
		c.heights = append(c.heights, HeightFor(line, c.width))
	default:
		return fmt.Errorf("set height of row %d of %d: %w", row, len(c.heights), document.ErrRowOutOfRange)
	}
	c.stale = true
	return nil
}

// InsertAt inserts a new entry for line at row, shifting later rows down.
func (c *Cache) InsertAt(row int, line []byte) error {
	if row < 0 || row > len(c.heights) {
		return fmt.Errorf("insert height at row %d of %d: %w", row, len(c.heights), document.ErrRowOutOfRange)
	}
	c.heights = append(c.heights, 0)
	copy(c.heights[row+1:], c.heights[row:])
	c.heights[row] = HeightFor(line, c.width)
	c.stale = true
	return nil
}

// RemoveAt removes the entry at row, shifting later rows up.
func (c *Cache) RemoveAt(row int) error {
	if row < 0 || row >= len(c.heights) {
		return fmt.Errorf("remove height at row %d of %d: %w", row, len(c.heights), document.ErrRowOutOfRange)
	}
	c.heights = append(c.heights[:row], c.heights[row+1:]...)
	c.stale = true
	return nil
}

// Reflow changes the width and recomputes every height from lines.
func (c *Cache) Reflow(width int, lines [][]byte) {
	c.width = width
	c.heights = c.heights[:0]
	for _, l := range lines {
		c.heights = append(c.heights, HeightFor(l, width))
	}
	c.stale = true
}

// RebuildPrefixSums recomputes prefix[i] = sum of heights[0:i] for
// i in [0, Len].
func (c *Cache) RebuildPrefixSums() {
	c.prefix = c.prefix[:0]
	c.prefix = append(c.prefix, 0)
	for i, h := range c.heights {
		c.prefix = append(c.prefix, c.prefix[i]+h)
	}
	c.stale = false
}

// Prefix returns the number of rows occupied by lines [0, i). Rows past
// the end count the virtual line as one row. Prefix sums are rebuilt
// first if an edit has invalidated them.
func (c *Cache) Prefix(i int) int {
	if c.stale || len(c.prefix) != len(c.heights)+1 {
		c.RebuildPrefixSums()
	}
	if i <= 0 {
		return 0
	}
	if i < len(c.prefix) {
		return c.prefix[i]
	}
	return c.prefix[len(c.prefix)-1] + (i - len(c.heights))
}

// RowsBetween returns the rows occupied by lines [from, to).
func (c *Cache) RowsBetween(from, to int) int {
	if to <= from {
		return 0
	}
	return c.Prefix(to) - c.Prefix(from)
}

// Reset releases all entries.
func (c *Cache) Reset() {
	c.heights = nil
	c.prefix = []int{0}
	c.stale = false
}
