package viewport

import (
	"strings"
	"testing"

	"github.com/dshills/ledit/internal/renderer/linecache"
)

func cacheOf(width int, lines ...string) *linecache.Cache {
	c := linecache.New(width)
	for i, l := range lines {
		if err := c.Set(i, []byte(l)); err != nil {
			panic(err)
		}
	}
	return c
}

func TestNewViewport(t *testing.T) {
	v := New(80, 24)
	if v.Width() != 80 || v.Height() != 24 || v.FirstVisible() != 0 {
		t.Errorf("New(80, 24) = %+v", v)
	}
	v.Resize(-1, -5)
	if v.Width() != 0 || v.Height() != 0 {
		t.Errorf("negative resize = %+v", v)
	}
}

func TestCalculateScrollDown(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line\r\n"
	}
	c := cacheOf(80, lines...)
	v := New(80, 5)

	v.CalculateScroll(c, 4)
	if v.FirstVisible() != 0 {
		t.Errorf("row 4 fits: first = %d, want 0", v.FirstVisible())
	}
	v.CalculateScroll(c, 5)
	if v.FirstVisible() != 1 {
		t.Errorf("row 5: first = %d, want 1", v.FirstVisible())
	}
	v.CalculateScroll(c, 12)
	if v.FirstVisible() != 8 {
		t.Errorf("row 12: first = %d, want 8", v.FirstVisible())
	}
}

func TestCalculateScrollUp(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line\r\n"
	}
	c := cacheOf(80, lines...)
	v := New(80, 5)
	v.CalculateScroll(c, 15)
	if v.FirstVisible() != 11 {
		t.Fatalf("first = %d, want 11", v.FirstVisible())
	}

	v.CalculateScroll(c, 10)
	if v.FirstVisible() != 10 {
		t.Errorf("scroll up to row 10: first = %d, want 10", v.FirstVisible())
	}
	v.CalculateScroll(c, 0)
	if v.FirstVisible() != 0 {
		t.Errorf("scroll up to row 0: first = %d, want 0", v.FirstVisible())
	}
}

func TestCalculateScrollWrappedLines(t *testing.T) {
	c := cacheOf(4, "ab\r\n", strings.Repeat("x", 10)+"\r\n", "cd\r\n", strings.Repeat("y", 8))
	v := New(4, 4)

	v.CalculateScroll(c, 1)
	if v.FirstVisible() != 0 {
		t.Errorf("row 1 (rows 1-3) fits: first = %d", v.FirstVisible())
	}
	v.CalculateScroll(c, 3)
	if v.FirstVisible() != 2 {
		t.Errorf("row 3 (2 rows): first = %d, want 2", v.FirstVisible())
	}
}

func TestCursorLineContained(t *testing.T) {
	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, strings.Repeat("z", (i*7)%23)+"\r\n")
	}
	for _, width := range []int{0, 1, 3, 5, 10} {
		c := cacheOf(width, lines...)
		for _, height := range []int{1, 3, 6} {
			v := New(width, height)
			order := []int{0, 29, 3, 17, 16, 30, 5, 29, 0}
			for _, row := range order {
				v.CalculateScroll(c, row)
				if c.Height(row) > height {
					continue
				}
				top := c.Prefix(v.FirstVisible())
				if c.Prefix(row) < top || c.Prefix(row)+c.Height(row) > top+height {
					t.Errorf("width %d height %d row %d: line [%d,%d) outside [%d,%d)",
						width, height, row, c.Prefix(row), c.Prefix(row)+c.Height(row), top, top+height)
				}
			}
		}
	}
}

func TestCalculateScrollTallLine(t *testing.T) {
	c := cacheOf(2, "a\r\n", strings.Repeat("x", 20))
	v := New(2, 3)
	v.CalculateScroll(c, 1)
	if v.FirstVisible() != 1 {
		t.Errorf("tall line should be pinned to top, first = %d", v.FirstVisible())
	}
}

func TestTranslateCursor(t *testing.T) {
	c := cacheOf(4, "ab\r\n", "abcdefghij\r\n", "cd")
	v := New(4, 10)

	tests := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{0, 0, 1, 1},
		{0, 2, 1, 3},
		{1, 0, 2, 1},
		{1, 5, 3, 2},
		{1, 8, 4, 1},
		{2, 1, 5, 2},
		{3, 0, 6, 1},
	}

	for _, tt := range tests {
		r, col := v.TranslateCursor(c, tt.row, tt.col)
		if r != tt.wantRow || col != tt.wantCol {
			t.Errorf("TranslateCursor(%d, %d) = (%d, %d), want (%d, %d)",
				tt.row, tt.col, r, col, tt.wantRow, tt.wantCol)
		}
	}
}

func TestTranslateCursorNoWrap(t *testing.T) {
	c := cacheOf(0, "abcdefghij\r\n", "x")
	v := New(0, 10)
	r, col := v.TranslateCursor(c, 1, 7)
	if r != 2 || col != 8 {
		t.Errorf("width 0: (%d, %d), want (2, 8)", r, col)
	}
}

func TestTranslateCursorAfterScroll(t *testing.T) {
	c := cacheOf(80, "a\r\n", "b\r\n", "c\r\n", "d\r\n")
	v := New(80, 2)
	v.CalculateScroll(c, 3)
	r, col := v.TranslateCursor(c, 3, 1)
	if r != 2 || col != 2 {
		t.Errorf("after scroll: (%d, %d), want (2, 2)", r, col)
	}
}

func TestClamp(t *testing.T) {
	c := cacheOf(80, "a\r\n", "b\r\n", "c\r\n", "d\r\n")
	v := New(80, 1)
	v.CalculateScroll(c, 3)
	v.Clamp(1)
	if v.FirstVisible() != 1 {
		t.Errorf("Clamp(1) first = %d", v.FirstVisible())
	}
}
