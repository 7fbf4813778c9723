package tui

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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("new screen should be spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
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

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place characters")
	}

	// Clipping off the right edge must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(8, 1) != 'l' || s.Get(9, 1) != 'o' {
		t.Errorf("clipped text lost its visible prefix")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() has %d newlines, want 1", strings.Count(got, "\n"))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')
	s.Resize(4, 4)

	if s.Width() != 4 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 4x4", s.Width(), s.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("resized screen not cleared at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenBoxAndFill(t *testing.T) {
	s := NewScreen(8, 5)
	s.FillRect(1, 1, 3, 2, '#')
	if s.Get(1, 1) != '#' || s.Get(3, 2) != '#' {
		t.Errorf("FillRect missed cells")
	}
	if s.Get(4, 1) == '#' {
		t.Errorf("FillRect overflowed its rectangle")
	}

	s.Clear()
	s.DrawBox(0, 0, 5, 4)
	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Errorf("DrawBox corners wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("DrawBox edges wrong")
	}
}
