package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/ledit/internal/renderer/backend"
	"github.com/dshills/ledit/internal/renderer/statusline"
)

func TestRendererDraw(t *testing.T) {
	b := backend.NewNullBackend(4, 4)
	status := statusline.New()
	status.SetFilename("f")
	r := New(b, status)

	r.Draw(Frame{
		Lines:        toLines("abcdef\r\n", "gh"),
		FirstVisible: 0,
		Width:        4,
		Rows:         3,
		CursorRow:    2,
		CursorCol:    3,
	})

	for y, want := range []string{"abcd", "ef", "gh"} {
		if got := b.Row(y); got != want {
			t.Errorf("Row(%d) = %q, want %q", y, got, want)
		}
	}
	if got := b.Status(3); got == "" || strings.Contains(got, "\n") {
		t.Errorf("Status(3) = %q", got)
	}
	if x, y, _ := b.CursorPosition(); x != 2 || y != 1 {
		t.Errorf("cursor = (%d, %d), want (2, 1)", x, y)
	}
	if b.Shows() != 1 {
		t.Errorf("Shows() = %d, want 1", b.Shows())
	}
}

func TestRendererWithoutStatus(t *testing.T) {
	b := backend.NewNullBackend(10, 2)
	r := New(b, nil)
	r.Draw(Frame{Lines: toLines("x"), Width: 10, Rows: 2, CursorRow: 1, CursorCol: 1})
	if got := b.Status(1); got != "" {
		t.Errorf("Status(1) = %q, want empty", got)
	}
	if x, y, _ := b.CursorPosition(); x != 0 || y != 0 {
		t.Errorf("cursor = (%d, %d), want origin", x, y)
	}
}
