// Package statusline provides the status row anchored at the bottom of the
// terminal.
package statusline

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/ledit/internal/renderer/backend"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
	// MessagePrompt is a question awaiting a single-key answer.
	MessagePrompt
)

// StatusLine renders the bottom status row.
type StatusLine struct {
	filename   string // Current filename
	modified   bool   // Document has unsaved changes
	line       int    // Current line (1-indexed for display)
	col        int    // Current column (1-indexed for display)
	totalLines int    // Total lines in document

	message     string
	messageType MessageType

	width int
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage displays a status message until it is cleared.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	b.DrawStatus(row, s.Text())
}

// Text returns the status row padded or truncated to the current width.
// A message replaces the file information; a prompt keeps the position
// on the right.
func (s *StatusLine) Text() string {
	if s.width <= 0 {
		return ""
	}

	var left string
	switch {
	case s.message != "" && s.messageType != MessagePrompt:
		return runewidth.FillRight(runewidth.Truncate(s.message, s.width, "…"), s.width)
	case s.message != "":
		left = s.message
	default:
		left = s.fileInfo()
	}

	right := s.formatPosition()
	room := s.width - runewidth.StringWidth(right) - 1
	if room < 1 {
		return runewidth.FillRight(runewidth.Truncate(left, s.width, "…"), s.width)
	}
	left = runewidth.FillRight(runewidth.Truncate(left, room, "…"), room)
	return left + " " + right
}

func (s *StatusLine) fileInfo() string {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(name)
	if s.modified {
		b.WriteString(" [+]")
	}
	b.WriteString(" - ")
	b.WriteString(strconv.Itoa(s.totalLines))
	b.WriteString(" lines")
	return b.String()
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	line := max(s.line, 1)
	col := max(s.col, 1)
	return strconv.Itoa(line) + ":" + strconv.Itoa(col) + " "
}
