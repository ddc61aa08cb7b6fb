package key

import (
	"errors"
	"testing"
	"time"
)

// scriptedSource replays bytes; a gap entry simulates a read timeout.
type scriptedSource struct {
	input []int
	err   error
}

const gap = -1

func (s *scriptedSource) ReadByteTimeout(time.Duration) (byte, bool, error) {
	if len(s.input) == 0 {
		return 0, false, s.err
	}
	b := s.input[0]
	s.input = s.input[1:]
	if b == gap {
		return 0, false, nil
	}
	return byte(b), true, nil
}

func bytesOf(s string) []int {
	out := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, int(s[i]))
	}
	return out
}

func decodeAll(t *testing.T, input []int) []Event {
	t.Helper()
	d := NewDecoder(&scriptedSource{input: input}, time.Millisecond)
	var out []Event
	for i := 0; i < 100; i++ {
		ev, ok, err := d.Next(time.Millisecond)
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if !ok {
			return out
		}
		out = append(out, ev)
	}
	t.Fatal("decoder did not drain input")
	return nil
}

func TestDecoderKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Event
	}{
		{"letter", "a", NewRuneEvent('a', ModNone)},
		{"carriage return", "\r", NewSpecialEvent(KeyEnter, ModNone)},
		{"line feed", "\n", NewSpecialEvent(KeyEnter, ModNone)},
		{"del", "\x7f", NewSpecialEvent(KeyBackspace, ModNone)},
		{"backspace", "\x08", NewSpecialEvent(KeyBackspace, ModNone)},
		{"tab", "\t", NewSpecialEvent(KeyTab, ModNone)},
		{"ctrl q", "\x11", NewRuneEvent('q', ModCtrl)},
		{"ctrl s", "\x13", NewRuneEvent('s', ModCtrl)},
		{"ctrl backslash", "\x1c", NewRuneEvent('\\', ModCtrl)},
		{"up", "\x1b[A", NewSpecialEvent(KeyUp, ModNone)},
		{"down", "\x1b[B", NewSpecialEvent(KeyDown, ModNone)},
		{"right", "\x1b[C", NewSpecialEvent(KeyRight, ModNone)},
		{"left", "\x1b[D", NewSpecialEvent(KeyLeft, ModNone)},
		{"application up", "\x1bOA", NewSpecialEvent(KeyUp, ModNone)},
		{"delete", "\x1b[3~", NewSpecialEvent(KeyDelete, ModNone)},
		{"page down", "\x1b[6~", NewSpecialEvent(KeyPageDown, ModNone)},
		{"alt x", "\x1bx", NewRuneEvent('x', ModAlt)},
		{"sgr mouse", "\x1b[<0;12;5M", NewSpecialEvent(KeyMouse, ModNone)},
		{"sgr mouse release", "\x1b[<0;12;5m", NewSpecialEvent(KeyMouse, ModNone)},
		{"x10 mouse", "\x1b[M !!", NewSpecialEvent(KeyMouse, ModNone)},
		{"utf8", "é", NewRuneEvent('é', ModNone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAll(t, bytesOf(tt.input))
			if len(got) != 1 {
				t.Fatalf("decoded %d events %v, want 1", len(got), got)
			}
			if !got[0].Equals(tt.want) {
				t.Errorf("decoded %v, want %v", got[0], tt.want)
			}
		})
	}
}

func TestDecoderLoneEscape(t *testing.T) {
	input := append([]int{0x1b, gap}, bytesOf("a")...)
	d := NewDecoder(&scriptedSource{input: input}, time.Millisecond)

	ev, ok, err := d.Next(time.Millisecond)
	if err != nil || !ok {
		t.Fatalf("Next() = %v, %v, %v", ev, ok, err)
	}
	if !ev.Equals(NewSpecialEvent(KeyEscape, ModNone)) {
		t.Errorf("first event = %v, want Escape", ev)
	}
	ev, ok, _ = d.Next(time.Millisecond)
	if !ok || !ev.Equals(NewRuneEvent('a', ModNone)) {
		t.Errorf("second event = %v, want 'a'", ev)
	}
}

func TestDecoderIncompleteSequence(t *testing.T) {
	inputs := [][]int{
		{0x1b, '[', gap},
		{0x1b, '[', '3', gap},
	}
	for _, input := range inputs {
		got := decodeAll(t, input)
		if len(got) != 1 || !got[0].Equals(NewSpecialEvent(KeyEscape, ModNone)) {
			t.Errorf("decode(%v) = %v, want a single Escape", input, got)
		}
	}
}

func TestDecoderMouseDoesNotLeak(t *testing.T) {
	got := decodeAll(t, bytesOf("\x1b[<64;10;3Mab"))
	if len(got) != 3 {
		t.Fatalf("decoded %v, want mouse then two letters", got)
	}
	if got[0].Key != KeyMouse {
		t.Errorf("first event = %v, want Mouse", got[0])
	}
	if got[1].Rune != 'a' || got[2].Rune != 'b' {
		t.Errorf("letters = %v %v", got[1], got[2])
	}
}

func TestDecoderTimeout(t *testing.T) {
	d := NewDecoder(&scriptedSource{}, 0)
	if _, ok, err := d.Next(time.Millisecond); ok || err != nil {
		t.Errorf("Next() on idle source = %v, %v", ok, err)
	}
}

func TestDecoderError(t *testing.T) {
	want := errors.New("read failed")
	d := NewDecoder(&scriptedSource{err: want}, 0)
	if _, _, err := d.Next(time.Millisecond); !errors.Is(err, want) {
		t.Errorf("Next() error = %v, want %v", err, want)
	}
}
