package linecache

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/ledit/internal/engine/document"
)

func TestHeightFor(t *testing.T) {
	tests := []struct {
		line  string
		width int
		want  int
	}{
		{"", 80, 1},
		{"\r\n", 80, 1},
		{"abcdefghij", 4, 3},
		{"abcdefgh", 4, 2},
		{"abcdefgh\r\n", 4, 2},
		{"abcdefghi\n", 4, 3},
		{"abc", 0, 1},
		{strings.Repeat("x", 500), 0, 1},
		{"abc", 1, 3},
	}

	for _, tt := range tests {
		if got := HeightFor([]byte(tt.line), tt.width); got != tt.want {
			t.Errorf("HeightFor(%q, %d) = %d, want %d", tt.line, tt.width, got, tt.want)
		}
	}
}

func TestHeightMatchesFormula(t *testing.T) {
	for width := 0; width <= 9; width++ {
		for n := 0; n <= 40; n++ {
			line := []byte(strings.Repeat("a", n) + "\r\n")
			want := 1
			if width > 0 && n > 0 {
				want = max(1, (n+width-1)/width)
			}
			if got := HeightFor(line, width); got != want {
				t.Errorf("len %d width %d: height %d, want %d", n, width, got, want)
			}
		}
	}
}

func TestCacheSurgery(t *testing.T) {
	c := New(4)
	for i, l := range []string{"ab\r\n", "abcdefghij", "x"} {
		if err := c.Set(i, []byte(l)); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]int{1, 3, 1}, c.Heights()); diff != "" {
		t.Errorf("heights (-want +got):\n%s", diff)
	}

	if err := c.InsertAt(1, []byte("12345")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 1}, c.Heights()); diff != "" {
		t.Errorf("after insert (-want +got):\n%s", diff)
	}

	if err := c.RemoveAt(2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 1}, c.Heights()); diff != "" {
		t.Errorf("after remove (-want +got):\n%s", diff)
	}

	if err := c.Set(5, nil); !errors.Is(err, document.ErrRowOutOfRange) {
		t.Errorf("Set(5) error = %v", err)
	}
	if err := c.RemoveAt(3); !errors.Is(err, document.ErrRowOutOfRange) {
		t.Errorf("RemoveAt(3) error = %v", err)
	}
}

func TestPrefixSums(t *testing.T) {
	c := New(4)
	for i, l := range []string{"ab\r\n", "abcdefghij\r\n", "abcde"} {
		_ = c.Set(i, []byte(l))
	}
	c.RebuildPrefixSums()

	want := []int{0, 1, 4, 6}
	for i, w := range want {
		if got := c.Prefix(i); got != w {
			t.Errorf("Prefix(%d) = %d, want %d", i, got, w)
		}
	}
	if got := c.Prefix(4); got != 7 {
		t.Errorf("Prefix past end = %d, want 7 (virtual line counts one row)", got)
	}
	if got := c.RowsBetween(1, 3); got != 5 {
		t.Errorf("RowsBetween(1, 3) = %d, want 5", got)
	}
}

func TestPrefixRebuildsAfterEdit(t *testing.T) {
	c := New(2)
	_ = c.Set(0, []byte("ab"))
	_ = c.Set(1, []byte("ab"))
	c.RebuildPrefixSums()
	_ = c.Set(0, []byte("abcdef"))
	if got := c.Prefix(1); got != 3 {
		t.Errorf("Prefix(1) after edit = %d, want 3", got)
	}
}

func TestVirtualLineHeight(t *testing.T) {
	c := New(10)
	if c.Height(0) != 1 {
		t.Errorf("virtual line height = %d, want 1", c.Height(0))
	}
}

func TestReflow(t *testing.T) {
	lines := [][]byte{[]byte("abcdefghij\r\n"), []byte("abc")}
	c := New(80)
	c.Reflow(80, lines)
	if diff := cmp.Diff([]int{1, 1}, c.Heights()); diff != "" {
		t.Errorf("width 80 (-want +got):\n%s", diff)
	}
	c.Reflow(3, lines)
	if diff := cmp.Diff([]int{4, 1}, c.Heights()); diff != "" {
		t.Errorf("width 3 (-want +got):\n%s", diff)
	}
	if c.Width() != 3 {
		t.Errorf("Width() = %d", c.Width())
	}
}
