package cursor

import "testing"

func TestSetColumnUpdatesWanted(t *testing.T) {
	c := New()
	c.SetColumn(7)
	if c.Col != 7 || c.Wanted != 7 {
		t.Errorf("SetColumn(7) = %v", c)
	}
	c.SetColumn(-3)
	if c.Col != 0 || c.Wanted != 0 {
		t.Errorf("SetColumn(-3) = %v", c)
	}
}

func TestMoveToRowUsesWantedColumn(t *testing.T) {
	for w := 0; w <= 12; w++ {
		for l := 0; l <= 12; l++ {
			c := New()
			c.SetColumn(w)
			c.MoveToRow(1, l)
			if want := min(w, l); c.Col != want {
				t.Errorf("wanted %d onto length %d: column %d, want %d", w, l, c.Col, want)
			}
			if c.Wanted != w {
				t.Errorf("wanted column changed to %d, want %d", c.Wanted, w)
			}
		}
	}
}

func TestWantedSurvivesShortLine(t *testing.T) {
	c := New()
	c.MoveTo(0, 10)
	c.MoveToRow(1, 3)
	if c.Col != 3 {
		t.Fatalf("short line column = %d, want 3", c.Col)
	}
	c.MoveToRow(2, 40)
	if c.Col != 10 {
		t.Errorf("long line column = %d, want 10", c.Col)
	}
}

func TestClamp(t *testing.T) {
	c := Cursor{Row: 0, Col: 9, Wanted: 9}
	c.Clamp(4)
	if c.Col != 4 || c.Wanted != 9 {
		t.Errorf("Clamp(4) = %v", c)
	}
}
