package key

import (
	"time"
	"unicode/utf8"
)

// DefaultEscapeTimeout bounds the wait for each byte following Escape.
const DefaultEscapeTimeout = 25 * time.Millisecond

// maxSequenceLen caps how many bytes of an unknown escape sequence are
// consumed before giving up on it.
const maxSequenceLen = 32

// ByteSource yields raw terminal input one byte at a time.
type ByteSource interface {
	// ReadByteTimeout waits at most timeout for a byte. It returns
	// ok == false when nothing arrived in time.
	ReadByteTimeout(timeout time.Duration) (b byte, ok bool, err error)
}

// Decoder turns raw terminal bytes into key events.
type Decoder struct {
	src           ByteSource
	escapeTimeout time.Duration
}

// NewDecoder creates a decoder reading from src. A non-positive
// escapeTimeout selects DefaultEscapeTimeout.
func NewDecoder(src ByteSource, escapeTimeout time.Duration) *Decoder {
	if escapeTimeout <= 0 {
		escapeTimeout = DefaultEscapeTimeout
	}
	return &Decoder{src: src, escapeTimeout: escapeTimeout}
}

// Next waits up to timeout for the next key. It returns ok == false when
// no input arrived.
func (d *Decoder) Next(timeout time.Duration) (ev Event, ok bool, err error) {
	b, ok, err := d.src.ReadByteTimeout(timeout)
	if err != nil || !ok {
		return Event{}, false, err
	}

	switch {
	case b == '\r' || b == '\n':
		return NewSpecialEvent(KeyEnter, ModNone), true, nil
	case b == 0x7f || b == 0x08:
		return NewSpecialEvent(KeyBackspace, ModNone), true, nil
	case b == '\t':
		return NewSpecialEvent(KeyTab, ModNone), true, nil
	case b == 0x1b:
		ev, err := d.escape()
		return ev, true, err
	case b == 0:
		return NewRuneEvent(' ', ModCtrl), true, nil
	case b < 0x1b:
		return NewRuneEvent(rune('a'+b-1), ModCtrl), true, nil
	case b < 0x20:
		return NewRuneEvent(rune(b+0x40), ModCtrl), true, nil
	case b < utf8.RuneSelf:
		return NewRuneEvent(rune(b), ModNone), true, nil
	default:
		r, err := d.multibyte(b)
		return NewRuneEvent(r, ModNone), true, err
	}
}

// next reads a continuation byte with the short escape timeout.
func (d *Decoder) next() (byte, bool, error) {
	return d.src.ReadByteTimeout(d.escapeTimeout)
}

func (d *Decoder) escape() (Event, error) {
	b, ok, err := d.next()
	if err != nil || !ok {
		return NewSpecialEvent(KeyEscape, ModNone), err
	}
	switch b {
	case '[':
		return d.csi()
	case 'O':
		return d.ss3()
	case 0x1b:
		return NewSpecialEvent(KeyEscape, ModAlt), nil
	}
	if b >= 0x20 && b < utf8.RuneSelf {
		return NewRuneEvent(rune(b), ModAlt), nil
	}
	return NewSpecialEvent(KeyEscape, ModNone), nil
}

// csi decodes the part of a control sequence after "ESC [".
func (d *Decoder) csi() (Event, error) {
	b, ok, err := d.next()
	if err != nil || !ok {
		return NewSpecialEvent(KeyEscape, ModNone), err
	}

	switch b {
	case 'A':
		return NewSpecialEvent(KeyUp, ModNone), nil
	case 'B':
		return NewSpecialEvent(KeyDown, ModNone), nil
	case 'C':
		return NewSpecialEvent(KeyRight, ModNone), nil
	case 'D':
		return NewSpecialEvent(KeyLeft, ModNone), nil
	case 'H':
		return NewSpecialEvent(KeyHome, ModNone), nil
	case 'F':
		return NewSpecialEvent(KeyEnd, ModNone), nil
	case '<':
		// SGR mouse report: ESC [ < b ; x ; y (M|m)
		return NewSpecialEvent(KeyMouse, ModNone), d.skipUntil('M', 'm')
	case 'M':
		// X10 mouse report: three raw bytes follow.
		for i := 0; i < 3; i++ {
			if _, ok, err := d.next(); err != nil || !ok {
				return NewSpecialEvent(KeyMouse, ModNone), err
			}
		}
		return NewSpecialEvent(KeyMouse, ModNone), nil
	}

	if b < '0' || b > '9' {
		return NewSpecialEvent(KeyEscape, ModNone), nil
	}

	// Numeric parameter terminated by a final byte, e.g. "3~".
	param := int(b - '0')
	for n := 0; n < maxSequenceLen; n++ {
		b, ok, err = d.next()
		if err != nil || !ok {
			return NewSpecialEvent(KeyEscape, ModNone), err
		}
		switch {
		case b >= '0' && b <= '9':
			param = param*10 + int(b-'0')
			continue
		case b == '~':
			return tildeKey(param), nil
		case b >= 0x40 && b <= 0x7e:
			return NewSpecialEvent(KeyEscape, ModNone), nil
		}
	}
	return NewSpecialEvent(KeyEscape, ModNone), nil
}

// ss3 decodes "ESC O x", sent for arrows in application cursor mode.
func (d *Decoder) ss3() (Event, error) {
	b, ok, err := d.next()
	if err != nil || !ok {
		return NewRuneEvent('O', ModAlt), err
	}
	switch b {
	case 'A':
		return NewSpecialEvent(KeyUp, ModNone), nil
	case 'B':
		return NewSpecialEvent(KeyDown, ModNone), nil
	case 'C':
		return NewSpecialEvent(KeyRight, ModNone), nil
	case 'D':
		return NewSpecialEvent(KeyLeft, ModNone), nil
	case 'H':
		return NewSpecialEvent(KeyHome, ModNone), nil
	case 'F':
		return NewSpecialEvent(KeyEnd, ModNone), nil
	}
	return NewSpecialEvent(KeyEscape, ModNone), nil
}

func tildeKey(param int) Event {
	switch param {
	case 1, 7:
		return NewSpecialEvent(KeyHome, ModNone)
	case 3:
		return NewSpecialEvent(KeyDelete, ModNone)
	case 4, 8:
		return NewSpecialEvent(KeyEnd, ModNone)
	case 5:
		return NewSpecialEvent(KeyPageUp, ModNone)
	case 6:
		return NewSpecialEvent(KeyPageDown, ModNone)
	}
	return NewSpecialEvent(KeyEscape, ModNone)
}

// skipUntil discards bytes up to and including one of the final bytes.
func (d *Decoder) skipUntil(finals ...byte) error {
	for n := 0; n < maxSequenceLen; n++ {
		b, ok, err := d.next()
		if err != nil || !ok {
			return err
		}
		for _, f := range finals {
			if b == f {
				return nil
			}
		}
	}
	return nil
}

// multibyte completes a UTF-8 sequence starting with lead.
func (d *Decoder) multibyte(lead byte) (rune, error) {
	var need int
	switch {
	case lead&0xe0 == 0xc0:
		need = 1
	case lead&0xf0 == 0xe0:
		need = 2
	case lead&0xf8 == 0xf0:
		need = 3
	default:
		return utf8.RuneError, nil
	}

	buf := []byte{lead}
	for i := 0; i < need; i++ {
		b, ok, err := d.next()
		if err != nil || !ok {
			return utf8.RuneError, err
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	return r, nil
}
