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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if runeAt(s, x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", runeAt(s, x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if runeAt(s, 5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", runeAt(s, 5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if runeAt(s, -1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if runeAt(s, 100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if runeAt(s, x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if runeAt(s, 2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, runeAt(s, 2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if runeAt(s, 18, 0) != 'H' || runeAt(s, 19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if runeAt(s, x, 2) != 'H' || runeAt(s, x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	// Check filled area
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if runeAt(s, x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, runeAt(s, x, y))
			}
		}
	}

	// Check outside is still space
	if runeAt(s, 1, 1) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if runeAt(s, 5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBoxColor(r, ColorGray)

	// Check corners
	if runeAt(s, 1, 1) != '╭' {
		t.Errorf("Top-left corner should be '╭', got %q", runeAt(s, 1, 1))
	}
	if runeAt(s, 5, 1) != '╮' {
		t.Errorf("Top-right corner should be '╮', got %q", runeAt(s, 5, 1))
	}
	if runeAt(s, 1, 4) != '╰' {
		t.Errorf("Bottom-left corner should be '╰', got %q", runeAt(s, 1, 4))
	}
	if runeAt(s, 5, 4) != '╯' {
		t.Errorf("Bottom-right corner should be '╯', got %q", runeAt(s, 5, 4))
	}

	if s.GetCell(1, 1).Color != ColorGray {
		t.Errorf("box color = %v, expected gray", s.GetCell(1, 1).Color)
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if runeAt(s, x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, runeAt(s, x, 1))
		}
		if runeAt(s, x, 4) != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, runeAt(s, x, 4))
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if runeAt(s, 1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, runeAt(s, 1, y))
		}
		if runeAt(s, 5, y) != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, runeAt(s, 5, y))
		}
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(1, 1, "ab", ColorRed)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'a' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected 'a' in red", cell)
	}

	s.Set(2, 1, 'z')
	if s.GetCell(2, 1).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}

	if s.GetCell(-1, 0) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds GetCell should return a blank cell")
	}

	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := rowText(s, 0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	row0 = rowText(s, 0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func rowText(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
