package document

import "fmt"

// Staging is the mutable working copy of the line at the cursor row.
type Staging struct {
	buf       []byte
	maxLength int
}

// NewStaging creates an empty staging line. A positive maxLength bounds
// the visible length of the line; zero means no limit.
func NewStaging(maxLength int) *Staging {
	if maxLength < 0 {
		maxLength = 0
	}
	return &Staging{maxLength: maxLength}
}

// Load replaces the staging content with a copy of line.
func (s *Staging) Load(line []byte) {
	s.buf = append(s.buf[:0], line...)
}

// Reset empties the staging line.
func (s *Staging) Reset() {
	s.buf = s.buf[:0]
}

// Bytes returns the staging content. The result aliases the staging buffer
// and is only valid until the next mutation.
func (s *Staging) Bytes() []byte {
	return s.buf
}

// Len returns the raw byte length, terminator included.
func (s *Staging) Len() int {
	return len(s.buf)
}

// VisibleLength returns the length excluding the terminator.
func (s *Staging) VisibleLength() int {
	return VisibleLength(s.buf)
}

// Terminator reports the staging line's terminator.
func (s *Staging) Terminator() Terminator {
	return TerminatorOf(s.buf)
}

// InsertByte inserts b at col, shifting the rest of the line right.
func (s *Staging) InsertByte(col int, b byte) error {
	if col < 0 || col > len(s.buf) {
		return fmt.Errorf("insert at column %d of %d: %w", col, len(s.buf), ErrRowOutOfRange)
	}
	s.buf = append(s.buf, 0)
	copy(s.buf[col+1:], s.buf[col:])
	s.buf[col] = b
	// A terminator byte does not count towards the limit.
	if err := s.checkLength(s.VisibleLength()); err != nil {
		s.DeleteByte(col)
		return err
	}
	return nil
}

// DeleteByte removes the byte at col, shifting the rest of the line left.
func (s *Staging) DeleteByte(col int) {
	if col < 0 || col >= len(s.buf) {
		return
	}
	copy(s.buf[col:], s.buf[col+1:])
	s.buf = s.buf[:len(s.buf)-1]
}

// Split divides the line at col. Head receives a CRLF terminator; tail keeps
// whatever terminator the line carried. Both results are fresh copies.
func (s *Staging) Split(col int) (head, tail []byte) {
	if col < 0 {
		col = 0
	}
	if col > len(s.buf) {
		col = len(s.buf)
	}
	head = make([]byte, 0, col+len(CRLF))
	head = append(head, s.buf[:col]...)
	head = append(head, CRLF...)
	tail = clone(s.buf[col:])
	return head, tail
}

// Append concatenates b onto the end of the line.
func (s *Staging) Append(b []byte) error {
	if err := s.checkLength(s.VisibleLength() + VisibleLength(b)); err != nil {
		return err
	}
	s.buf = append(s.buf, b...)
	return nil
}

// StripTerminator removes the trailing terminator, if any.
func (s *Staging) StripTerminator() {
	s.buf = s.buf[:s.VisibleLength()]
}

// EnsureTerminator appends CRLF when the line has no terminator and
// reports whether it did.
func (s *Staging) EnsureTerminator() bool {
	if s.Terminator() != TerminatorNone {
		return false
	}
	s.buf = append(s.buf, CRLF...)
	return true
}

func (s *Staging) checkLength(n int) error {
	if s.maxLength > 0 && n > s.maxLength {
		return fmt.Errorf("%d bytes exceeds limit of %d: %w", n, s.maxLength, ErrLineTooLong)
	}
	return nil
}
