package document

import (
	"errors"
	"fmt"
	"io"
)

// Errors returned by document operations.
var (
	// ErrRowOutOfRange indicates a row index outside the document.
	ErrRowOutOfRange = errors.New("row out of range")

	// ErrResourceExhausted indicates the document cannot grow any further.
	ErrResourceExhausted = errors.New("document storage exhausted")

	// ErrLineTooLong indicates a line exceeded the configured maximum length.
	ErrLineTooLong = errors.New("line length exceeded")
)

// Document is the ordered collection of committed lines.
type Document struct {
	lines    [][]byte
	maxLines int
}

// Option configures a Document.
type Option func(*Document)

// WithMaxLines caps the number of lines the document may hold.
// Zero means no limit.
func WithMaxLines(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxLines = n
		}
	}
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Len returns the number of committed lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the stored bytes of row. The result must not be modified.
// The virtual line (row == Len) reads as empty.
func (d *Document) Line(row int) []byte {
	if row < 0 || row >= len(d.lines) {
		return nil
	}
	return d.lines[row]
}

// Lines returns the committed lines. The result must not be modified.
func (d *Document) Lines() [][]byte {
	return d.lines
}

// Commit replaces the stored bytes of row with a copy of content.
// Committing to row == Len promotes the virtual line first.
func (d *Document) Commit(row int, content []byte) error {
	if row < 0 || row > len(d.lines) {
		return fmt.Errorf("commit row %d of %d: %w", row, len(d.lines), ErrRowOutOfRange)
	}
	if row == len(d.lines) {
		if err := d.Promote(); err != nil {
			return err
		}
	}
	d.lines[row] = nil
	d.lines[row] = clone(content)
	return nil
}

// Promote turns the virtual line into a real, empty line.
func (d *Document) Promote() error {
	if err := d.checkGrowth(); err != nil {
		return err
	}
	d.lines = append(d.lines, []byte{})
	return nil
}

// InsertLineAt inserts a copy of content at row, shifting later lines down.
func (d *Document) InsertLineAt(row int, content []byte) error {
	if row < 0 || row > len(d.lines) {
		return fmt.Errorf("insert row %d of %d: %w", row, len(d.lines), ErrRowOutOfRange)
	}
	if err := d.checkGrowth(); err != nil {
		return err
	}
	d.lines = append(d.lines, nil)
	copy(d.lines[row+1:], d.lines[row:])
	d.lines[row] = clone(content)
	return nil
}

// RemoveLineAt removes row, shifting later lines up.
func (d *Document) RemoveLineAt(row int) error {
	if row < 0 || row >= len(d.lines) {
		return fmt.Errorf("remove row %d of %d: %w", row, len(d.lines), ErrRowOutOfRange)
	}
	copy(d.lines[row:], d.lines[row+1:])
	d.lines[len(d.lines)-1] = nil
	d.lines = d.lines[:len(d.lines)-1]
	return nil
}

// Size returns the total number of bytes held, terminators included.
func (d *Document) Size() int {
	n := 0
	for _, l := range d.lines {
		n += len(l)
	}
	return n
}

// Bytes returns the document content as it would be persisted.
func (d *Document) Bytes() []byte {
	out := make([]byte, 0, d.Size())
	for _, l := range d.lines {
		out = append(out, l...)
	}
	return out
}

// WriteTo writes every line verbatim, in order. Terminators are neither
// added nor stripped.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range d.lines {
		n, err := w.Write(l)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n != len(l) {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// Reset releases all lines.
func (d *Document) Reset() {
	for i := range d.lines {
		d.lines[i] = nil
	}
	d.lines = nil
}

func (d *Document) checkGrowth() error {
	if d.maxLines > 0 && len(d.lines) >= d.maxLines {
		return fmt.Errorf("%d lines: %w", d.maxLines, ErrResourceExhausted)
	}
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
