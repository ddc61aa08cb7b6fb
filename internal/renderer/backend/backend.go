// Package backend provides the terminal abstraction the editor draws to
// and reads key events from.
package backend

import (
	"bytes"
	"errors"
	"time"

	"github.com/dshills/ledit/internal/input/key"
)

// ErrClosed is returned by PollEvent after Shutdown.
var ErrClosed = errors.New("backend is shut down")

// EventType identifies the type of terminal event.
type EventType int

const (
	// EventNone means no input arrived before the poll timeout.
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init switches the terminal to raw mode and the alternate screen and
	// enables mouse reporting. Must be called before any other methods.
	Init() error

	// Shutdown restores the terminal state. It is safe to call more than
	// once.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// PollEvent waits at most timeout for the next event. A timeout is
	// reported as an EventNone event and a nil error.
	PollEvent(timeout time.Duration) (Event, error)

	// DiscardInput drops any input that is already queued.
	DiscardInput()

	// Clear clears the entire screen.
	Clear()

	// DrawDocument paints a text blob from the top-left corner. Rows in
	// the blob are separated by "\r\n".
	DrawDocument(blob []byte)

	// DrawStatus paints text as a highlighted row at y.
	DrawStatus(y int, text string)

	// ShowCursor positions and displays the cursor (0-based).
	ShowCursor(x, y int)

	// Show flushes pending drawing to the display.
	Show()
}

// SplitRows splits a document blob into its screen rows.
func SplitRows(blob []byte) [][]byte {
	if len(blob) == 0 {
		return nil
	}
	return bytes.Split(blob, []byte("\r\n"))
}

// writeRows copies blob's rows to buf, keeping the row breaks and
// replacing control bytes inside a row as printable does.
func writeRows(buf *bytes.Buffer, blob []byte) {
	for y, row := range SplitRows(blob) {
		if y > 0 {
			buf.WriteString("\r\n")
		}
		for _, c := range row {
			if c < 0x80 {
				c = byte(printable(rune(c)))
			}
			buf.WriteByte(c)
		}
	}
}

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	rows          []string
	status        map[int]string
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        []Event
	shows         int
	initialized   bool
	shutdown      bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		rows:   make([]string, height),
		status: make(map[int]string),
	}
}

func (b *NullBackend) Init() error {
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.shutdown = true
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

// PollEvent returns queued events in order, then timeouts.
func (b *NullBackend) PollEvent(time.Duration) (Event, error) {
	if b.shutdown {
		return Event{}, ErrClosed
	}
	if len(b.events) == 0 {
		return Event{}, nil
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, nil
}

func (b *NullBackend) DiscardInput() {
	b.events = nil
}

func (b *NullBackend) Clear() {
	b.rows = make([]string, b.height)
	b.status = make(map[int]string)
}

func (b *NullBackend) DrawDocument(blob []byte) {
	for y, row := range SplitRows(blob) {
		if y >= b.height {
			break
		}
		b.rows[y] = string(row)
	}
}

func (b *NullBackend) DrawStatus(y int, text string) {
	if y >= 0 && y < b.height {
		b.status[y] = text
	}
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) Show() {
	b.shows++
}

// Post queues events for PollEvent.
func (b *NullBackend) Post(events ...Event) {
	b.events = append(b.events, events...)
}

// PostKeys queues key events parsed from specs such as "a" or "Ctrl+Q".
// It panics on an invalid spec.
func (b *NullBackend) PostKeys(specs ...string) {
	for _, s := range specs {
		b.Post(Event{Type: EventKey, Key: key.MustParse(s)})
	}
}

// PostText queues one key event per rune of text.
func (b *NullBackend) PostText(text string) {
	for _, r := range text {
		b.Post(Event{Type: EventKey, Key: key.NewRuneEvent(r, key.ModNone)})
	}
}

// Pending returns the number of queued events.
func (b *NullBackend) Pending() int {
	return len(b.events)
}

// Row returns the document text painted at row y.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= len(b.rows) {
		return ""
	}
	return b.rows[y]
}

// Status returns the status text painted at row y.
func (b *NullBackend) Status(y int) string {
	return b.status[y]
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Shows returns how many frames were flushed.
func (b *NullBackend) Shows() int {
	return b.shows
}

// Active reports whether Init was called and Shutdown was not.
func (b *NullBackend) Active() bool {
	return b.initialized && !b.shutdown
}

// Resize simulates a terminal resize and queues the resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.rows = make([]string, height)
	b.Post(Event{Type: EventResize, Width: width, Height: height})
}
