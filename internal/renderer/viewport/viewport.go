// Package viewport maps the logical cursor onto terminal coordinates and
// keeps it visible while scrolling.
package viewport

// Heights is the view of the visual height cache the viewport needs.
type Heights interface {
	// Height returns the visual height of row (1 for the virtual line).
	Height(row int) int
	// Prefix returns the number of rows occupied by lines [0, i).
	Prefix(i int) int
	// RebuildPrefixSums recomputes the prefix-sum index.
	RebuildPrefixSums()
}

// Viewport is the visible width x height region used for document text.
type Viewport struct {
	firstVisible int
	width        int
	height       int
}

// New creates a viewport of the given size. Negative sizes are treated as
// zero; a zero width disables wrapping.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width in columns.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the number of rows available for document text.
func (v *Viewport) Height() int {
	return v.height
}

// FirstVisible returns the index of the topmost rendered logical line.
func (v *Viewport) FirstVisible() int {
	return v.firstVisible
}

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
}

// Clamp keeps the first visible line within a document of n lines.
// The virtual line at index n remains addressable.
func (v *Viewport) Clamp(n int) {
	v.firstVisible = max(0, min(v.firstVisible, n))
}

// CalculateScroll adjusts the first visible line so that the cursor line
// is fully shown whenever it fits, scrolling one logical line at a time.
func (v *Viewport) CalculateScroll(h Heights, cursorRow int) {
	h.RebuildPrefixSums()

	lineHeight := h.Height(cursorRow)
	lineEnd := h.Prefix(cursorRow) + lineHeight
	first := v.firstVisible

	for lineEnd-h.Prefix(first) > v.height && first < cursorRow {
		first++
	}
	for lineEnd-h.Prefix(first) < lineHeight && first > 0 {
		first--
	}

	v.firstVisible = first
}

// TranslateCursor converts a logical cursor position to 1-based terminal
// coordinates relative to the top of the document area.
func (v *Viewport) TranslateCursor(h Heights, cursorRow, cursorCol int) (screenRow, screenCol int) {
	screenRow = h.Prefix(cursorRow) - h.Prefix(v.firstVisible)
	if v.width <= 0 {
		return screenRow + 1, cursorCol + 1
	}
	screenRow += cursorCol/v.width + 1
	screenCol = cursorCol%v.width + 1
	return screenRow, screenCol
}
