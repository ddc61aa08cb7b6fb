package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/ledit/internal/engine/cursor"
	"github.com/dshills/ledit/internal/engine/document"
	"github.com/dshills/ledit/internal/renderer/linecache"
	"github.com/dshills/ledit/internal/renderer/viewport"
)

// Engine orchestrates the document, the height cache and the viewport.
type Engine struct {
	doc     *document.Document
	staging *document.Staging
	cursor  cursor.Cursor
	cache   *linecache.Cache
	view    *viewport.Viewport

	modified bool
	closed   bool
}

// New creates an engine with an empty document and a viewport of the
// given size. Height is the number of rows available for document text.
func New(width, height int, opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		doc:     document.New(document.WithMaxLines(o.maxLines)),
		staging: document.NewStaging(o.maxLineLength),
		cursor:  cursor.New(),
		cache:   linecache.New(width),
		view:    viewport.New(width, height),
	}
}

// Document returns the committed lines.
func (e *Engine) Document() *document.Document {
	return e.doc
}

// Cache returns the visual height cache.
func (e *Engine) Cache() *linecache.Cache {
	return e.cache
}

// Viewport returns the viewport controller.
func (e *Engine) Viewport() *viewport.Viewport {
	return e.view
}

// Cursor returns the logical cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.cursor
}

// Staging returns the working copy of the cursor row. The result must not
// be modified.
func (e *Engine) Staging() []byte {
	return e.staging.Bytes()
}

// Modified reports whether the document changed since load or the last save.
func (e *Engine) Modified() bool {
	return e.modified
}

// MarkSaved clears the modified flag.
func (e *Engine) MarkSaved() {
	e.modified = false
}

// LoadInitial replaces the document with data. Bytes are fed through the
// same per-byte insertion path used interactively; a bare "\n" is stored
// as "\r\n". The cursor ends at the start of the first line.
func (e *Engine) LoadInitial(data []byte) error {
	if e.closed {
		return ErrClosed
	}
	e.doc.Reset()
	e.cache.Reset()
	e.staging.Reset()
	e.cursor = cursor.New()

	for _, b := range data {
		if b != '\n' {
			if err := e.insertByte(b); err != nil {
				return err
			}
			continue
		}
		line := e.staging.Bytes()
		if n := len(line); n == 0 || line[n-1] != '\r' {
			if err := e.insertByte('\r'); err != nil {
				return err
			}
		}
		if err := e.insertByte('\n'); err != nil {
			return err
		}
		e.cursor.MoveTo(e.cursor.Row+1, 0)
		e.staging.Reset()
	}

	e.cursor = cursor.New()
	e.staging.Load(e.doc.Line(0))
	e.view.Clamp(0)
	e.modified = false
	return nil
}

// InsertByte inserts b at the cursor and advances the column. Writing on
// the virtual line first promotes it to a real line. A CR typed at the end
// of an unterminated line becomes its terminator and the column stays put.
func (e *Engine) InsertByte(b byte) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.insertByte(b); err != nil {
		return err
	}
	e.cursor.SetColumn(min(e.cursor.Col, e.staging.VisibleLength()))
	return nil
}

// InsertRune inserts the UTF-8 encoding of r one byte at a time.
func (e *Engine) InsertRune(r rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, b := range buf[:n] {
		if err := e.InsertByte(b); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) insertByte(b byte) error {
	col := e.cursor.Col
	if err := e.staging.InsertByte(col, b); err != nil {
		return err
	}
	if err := e.promote(); err != nil {
		return err
	}
	e.cursor.SetColumn(col + 1)
	e.modified = true
	return e.commitLine()
}

// Refresh recalculates the scroll offset for the cursor row and returns
// the 1-based terminal coordinates of the cursor.
func (e *Engine) Refresh() (row, col int) {
	e.view.CalculateScroll(e.cache, e.cursor.Row)
	return e.view.TranslateCursor(e.cache, e.cursor.Row, e.cursor.Col)
}

// Resize changes the viewport size and recomputes every line height for
// the new width.
func (e *Engine) Resize(width, height int) {
	e.view.Resize(width, height)
	e.cache.Reflow(e.view.Width(), e.doc.Lines())
}

// Verify checks that the height cache mirrors the document.
func (e *Engine) Verify() error {
	if e.cache.Len() != e.doc.Len() {
		return fmt.Errorf("%w: %d heights for %d lines", ErrInconsistent, e.cache.Len(), e.doc.Len())
	}
	for i, l := range e.doc.Lines() {
		if want := linecache.HeightFor(l, e.cache.Width()); e.cache.Height(i) != want {
			return fmt.Errorf("%w: row %d height %d, want %d", ErrInconsistent, i, e.cache.Height(i), want)
		}
	}
	if e.cursor.Row > e.doc.Len() {
		return fmt.Errorf("%w: cursor row %d past %d lines", ErrInconsistent, e.cursor.Row, e.doc.Len())
	}
	if e.cursor.Col < 0 || e.cursor.Col > e.staging.VisibleLength() {
		return fmt.Errorf("%w: cursor column %d outside [0, %d]", ErrInconsistent, e.cursor.Col, e.staging.VisibleLength())
	}
	return nil
}

// Close releases the document and cache storage. The engine cannot be
// edited afterwards.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.doc.Reset()
	e.cache.Reset()
	e.staging.Reset()
}

// promote turns the virtual line under the cursor into a real, empty line
// together with its cache entry.
func (e *Engine) promote() error {
	row := e.cursor.Row
	if row != e.doc.Len() {
		return nil
	}
	if err := e.doc.Promote(); err != nil {
		return err
	}
	return e.cache.Set(row, nil)
}

// commitLine stores the staging line at the cursor row and recomputes
// that row's height.
func (e *Engine) commitLine() error {
	row := e.cursor.Row
	if err := e.doc.Commit(row, e.staging.Bytes()); err != nil {
		return err
	}
	return e.cache.Set(row, e.staging.Bytes())
}

// leaveRow commits the staging line before the cursor moves off a real row.
func (e *Engine) leaveRow() error {
	if e.cursor.Row >= e.doc.Len() {
		return nil
	}
	return e.commitLine()
}

// enterRow loads row into staging.
func (e *Engine) enterRow(row int) {
	e.staging.Load(e.doc.Line(row))
}
