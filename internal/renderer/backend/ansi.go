//go:build unix

package backend

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/ledit/internal/input/key"
)

// Control sequences written by the ANSI backend.
const (
	seqAltScreenOn  = "\x1b[?1049h"
	seqAltScreenOff = "\x1b[?1049l"
	seqMouseOn      = "\x1b[?1000h\x1b[?1006h"
	seqMouseOff     = "\x1b[?1006l\x1b[?1000l"
	seqClear        = "\x1b[2J"
	seqHome         = "\x1b[H"
	seqReverse      = "\x1b[7m"
	seqReset        = "\x1b[0m"
	seqClearLine    = "\x1b[K"
)

// ANSI implements Backend by writing VT100 control sequences directly to
// a raw-mode terminal. Input is decoded byte by byte with key.Decoder.
type ANSI struct {
	in      *os.File
	out     *os.File
	state   *term.State
	decoder *key.Decoder
	frame   bytes.Buffer

	width, height int
	active        bool
}

// NewANSI creates a backend on the given terminal files. escapeTimeout
// bounds the wait for bytes following Escape.
func NewANSI(in, out *os.File, escapeTimeout time.Duration) *ANSI {
	a := &ANSI{in: in, out: out}
	a.decoder = key.NewDecoder(a, escapeTimeout)
	return a
}

func (a *ANSI) Init() error {
	state, err := term.MakeRaw(int(a.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	a.state = state
	a.active = true

	a.width, a.height, err = term.GetSize(int(a.out.Fd()))
	if err != nil {
		a.Shutdown()
		return fmt.Errorf("terminal size: %w", err)
	}

	_, err = a.out.WriteString(seqAltScreenOn + seqMouseOn + seqClear + seqHome)
	return err
}

func (a *ANSI) Shutdown() {
	if !a.active {
		return
	}
	a.active = false
	_, _ = a.out.WriteString(seqMouseOff + seqClear + seqHome + seqAltScreenOff) // best-effort
	if a.state != nil {
		_ = term.Restore(int(a.in.Fd()), a.state)
	}
}

func (a *ANSI) Size() (int, int) {
	return a.width, a.height
}

// PollEvent reports a resize as soon as the terminal size changes,
// otherwise it decodes the next key.
func (a *ANSI) PollEvent(timeout time.Duration) (Event, error) {
	if !a.active {
		return Event{}, ErrClosed
	}
	if w, h, err := term.GetSize(int(a.out.Fd())); err == nil && (w != a.width || h != a.height) {
		a.width, a.height = w, h
		return Event{Type: EventResize, Width: w, Height: h}, nil
	}

	ev, ok, err := a.decoder.Next(timeout)
	if err != nil || !ok {
		return Event{}, err
	}
	if ev.Key == key.KeyMouse {
		return Event{Type: EventMouse}, nil
	}
	return Event{Type: EventKey, Key: ev}, nil
}

// ReadByteTimeout implements key.ByteSource using poll(2).
func (a *ANSI) ReadByteTimeout(timeout time.Duration) (byte, bool, error) {
	fds := []unix.PollFd{{Fd: int32(a.in.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if errors.Is(err, unix.EINTR) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("poll input: %w", err)
	}
	if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) == 0 {
		return 0, false, nil
	}

	var b [1]byte
	m, err := unix.Read(int(a.in.Fd()), b[:])
	if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read input: %w", err)
	}
	if m == 0 {
		return 0, false, io.EOF
	}
	return b[0], true, nil
}

func (a *ANSI) DiscardInput() {
	for {
		if _, ok, err := a.ReadByteTimeout(0); !ok || err != nil {
			return
		}
	}
}

func (a *ANSI) Clear() {
	a.frame.WriteString(seqClear)
	a.frame.WriteString(seqHome)
}

func (a *ANSI) DrawDocument(blob []byte) {
	a.frame.WriteString(seqHome)
	writeRows(&a.frame, blob)
}

func (a *ANSI) DrawStatus(y int, text string) {
	fmt.Fprintf(&a.frame, "\x1b[%d;1H", y+1)
	a.frame.WriteString(seqReverse)
	a.frame.WriteString(text)
	a.frame.WriteString(seqClearLine)
	a.frame.WriteString(seqReset)
}

func (a *ANSI) ShowCursor(x, y int) {
	fmt.Fprintf(&a.frame, "\x1b[%d;%dH", y+1, x+1)
}

func (a *ANSI) Show() {
	_, _ = a.out.Write(a.frame.Bytes()) // a failed frame is repainted on the next cycle
	a.frame.Reset()
}
