package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with default-colored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("New screen should hold default spaces, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetCell(2, 3, '●', ColorBrightRed)
	cell := s.GetCell(2, 3)
	if cell.Rune != '●' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(2, 3) = %+v, expected bright red '●'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	// Out of bounds get should return a default space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if c := s.GetCell(100, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(3, 3, 'K', ColorCyan)

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("After Resize, size = %dx%d, expected 20x5", s.Width(), s.Height())
	}

	// Content within the overlap is preserved
	cell := s.GetCell(3, 3)
	if cell.Rune != 'K' || cell.Color != ColorCyan {
		t.Errorf("Resize should preserve overlapping content, got %+v", cell)
	}

	// New area is cleared
	if s.Get(15, 4) != ' ' {
		t.Error("New area after Resize should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "SCORE")
	if s.Row(1) != "  SCORE             " {
		t.Errorf("Row(1) = %q, expected text at column 2", s.Row(1))
	}

	s.DrawTextColored(0, 2, "HI", ColorBrightYellow)
	if c := s.GetCell(0, 2); c.Color != ColorBrightYellow {
		t.Errorf("DrawTextColored should set color, got %+v", c)
	}

	// Clipped text must not panic
	s.DrawText(18, 0, "LONG")
	if s.Get(19, 0) != 'O' {
		t.Errorf("Clipped DrawText: expected 'O' at right edge, got %q", s.Get(19, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "ABC")

	if s.Get(4, 1) != 'A' || s.Get(5, 1) != 'B' || s.Get(6, 1) != 'C' {
		t.Errorf("DrawTextCentered misplaced text: row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 6, 4), ColorGray)

	if s.Get(1, 1) != '┌' || s.Get(6, 1) != '┐' {
		t.Errorf("Box top corners wrong: %q %q", s.Get(1, 1), s.Get(6, 1))
	}
	if s.Get(1, 4) != '└' || s.Get(6, 4) != '┘' {
		t.Errorf("Box bottom corners wrong: %q %q", s.Get(1, 4), s.Get(6, 4))
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges not drawn")
	}
	if c := s.GetCell(1, 1); c.Color != ColorGray {
		t.Errorf("Box color = %v, expected gray", c.Color)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(8, 8)

	s.DrawHLine(1, 2, 5, '=', ColorDefault)
	for x := 1; x < 6; x++ {
		if s.Get(x, 2) != '=' {
			t.Errorf("HLine missing at x=%d", x)
		}
	}

	s.DrawVLine(4, 3, 4, '|', ColorDefault)
	for y := 3; y < 7; y++ {
		if s.Get(4, y) != '|' {
			t.Errorf("VLine missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'A')
	s.Set(2, 1, 'B')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "A  " || lines[1] != "  B" {
		t.Errorf("String() = %q, unexpected layout", got)
	}
}
