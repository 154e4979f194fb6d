package core

import (
	"strings"
	"testing"
)

func wantRune(t *testing.T, s *Screen, x, y int, want rune) {
	t.Helper()
	if got := s.Get(x, y); got != want {
		t.Errorf("Get(%d, %d) = %q, want %q", x, y, got, want)
	}
}

func wantFilled(t *testing.T, s *Screen, want rune) {
	t.Helper()
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.Get(x, y); got != want {
				t.Fatalf("Get(%d, %d) = %q, want the whole screen filled with %q", x, y, got, want)
			}
		}
	}
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("Screen is %dx%d, want 80x24", s.Width(), s.Height())
	}
	wantFilled(t, s, ' ')
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	wantRune(t, s, 5, 5, 'X')

	// Writes outside the grid are dropped, reads come back as spaces
	for _, p := range []struct{ x, y int }{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.Set(p.x, p.y, 'A')
		wantRune(t, s, p.x, p.y, ' ')
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X')
	s.Clear()
	wantFilled(t, s, ' ')
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')
	wantFilled(t, s, '#')
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		wantRune(t, s, 2+i, 1, ch)
	}

	// Text past the right edge is clipped, not wrapped
	s.DrawText(18, 0, "Hello")
	wantRune(t, s, 18, 0, 'H')
	wantRune(t, s, 19, 0, 'e')
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	wantRune(t, s, x, 2, 'H')
	wantRune(t, s, x+1, 2, 'i')
}

func TestScreenCellColors(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetCell(2, 1, 'G', ColorBrightRed)
	cell := s.GetCell(2, 1)
	if cell.Rune != 'G' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(2, 1) = %+v, expected a bright red 'G'", cell)
	}

	// Plain Set writes the default color
	s.Set(2, 1, 'G')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Set should write the default color, got %v", c)
	}

	// Out of bounds reads come back as default spaces
	if c := s.GetCell(-1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v", c)
	}

	s.SetCell(0, 0, '@', ColorBrightYellow)
	s.Clear()
	if c := s.GetCell(0, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Error("Clear should drop colors along with runes")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(4, 1, "Caught!", ColorBrightRed)

	for i, ch := range "Caught!" {
		cell := s.GetCell(4+i, 1)
		if cell.Rune != ch || cell.Color != ColorBrightRed {
			t.Errorf("Cell %d = %+v, expected colored %q", i, cell, ch)
		}
	}
	if s.GetCell(3, 1).Color != ColorDefault {
		t.Error("Neighboring cells should keep the default color")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			wantRune(t, s, x, y, '#')
		}
	}

	// Cells outside the rect stay untouched
	wantRune(t, s, 1, 1, ' ')
	wantRune(t, s, 5, 5, ' ')
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	for _, c := range []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	} {
		wantRune(t, s, c.x, c.y, c.want)
	}

	for x := 2; x < 5; x++ {
		wantRune(t, s, x, 1, '─')
		wantRune(t, s, x, 4, '─')
	}
	for y := 2; y < 4; y++ {
		wantRune(t, s, 1, y, '│')
		wantRune(t, s, 5, y, '│')
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-')

	for x := 2; x < 7; x++ {
		wantRune(t, s, x, 2, '-')
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawVLine(3, 2, 4, '|')

	for y := 2; y < 6; y++ {
		wantRune(t, s, 3, y, '|')
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Shrinking keeps the top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row)
	}

	// Growing keeps it too
	s.Resize(15, 8)
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if got := s.Row(-1); got != strings.Repeat(" ", 10) {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}
