package renderer

import (
	"github.com/dshills/ledit/internal/renderer/backend"
	"github.com/dshills/ledit/internal/renderer/statusline"
)

// Frame is everything needed to paint one screen.
type Frame struct {
	// Lines are the committed document lines.
	Lines [][]byte

	// FirstVisible is the topmost rendered line.
	FirstVisible int

	// Width and Rows describe the document area.
	Width int
	Rows  int

	// CursorRow and CursorCol are 1-based terminal coordinates.
	CursorRow int
	CursorCol int
}

// Renderer paints frames to a backend. The document area occupies the
// top of the screen and the status line sits on the last row.
type Renderer struct {
	backend backend.Backend
	status  *statusline.StatusLine
}

// New creates a renderer. status may be nil to paint no status row.
func New(b backend.Backend, status *statusline.StatusLine) *Renderer {
	return &Renderer{backend: b, status: status}
}

// Draw clears the screen, paints the document blob and the status row,
// positions the cursor and flushes.
func (r *Renderer) Draw(f Frame) {
	r.backend.Clear()
	r.backend.DrawDocument(Assemble(f.Lines, f.FirstVisible, f.Width, f.Rows))

	if r.status != nil {
		width, height := r.backend.Size()
		r.status.Resize(width)
		r.status.Render(r.backend, height-1)
	}

	r.backend.ShowCursor(max(f.CursorCol-1, 0), max(f.CursorRow-1, 0))
	r.backend.Show()
}
