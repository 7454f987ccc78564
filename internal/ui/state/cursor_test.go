package state

import "testing"

func TestMoveHome(t *testing.T) {
	c := NewCursor(3, 2)
	if !c.MoveHome() {
		t.Fatalf("expected move when rows exist")
	}
	if c.Index != 0 {
		t.Fatalf("expected cursor 0, got %d", c.Index)
	}

	empty := NewCursor(0, 5)
	if empty.MoveHome() {
		t.Fatalf("expected no movement for empty cursor")
	}
	if empty.Index != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Index)
	}
}

func TestMoveEnd(t *testing.T) {
	c := NewCursor(3, 0)
	if !c.MoveEnd() {
		t.Fatalf("expected movement to end")
	}
	if c.Index != 2 {
		t.Fatalf("expected cursor 2, got %d", c.Index)
	}

	empty := NewCursor(0, 0)
	if empty.MoveEnd() {
		t.Fatalf("expected no movement for empty cursor")
	}
}

func TestMoveUpDownStopAtEdges(t *testing.T) {
	c := NewCursor(2, 0)
	if c.MoveUp() {
		t.Fatalf("expected no movement above first row")
	}
	if !c.MoveDown() || c.Index != 1 {
		t.Fatalf("expected cursor 1, got %d", c.Index)
	}
	if c.MoveDown() {
		t.Fatalf("expected no movement past last row")
	}
}

func TestMovePaging(t *testing.T) {
	c := NewCursor(5, 0)
	if !c.MovePageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if c.Index != 2 {
		t.Fatalf("expected cursor 2, got %d", c.Index)
	}
	if !c.MovePageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if c.Index != 4 {
		t.Fatalf("expected cursor 4, got %d", c.Index)
	}
	if c.MovePageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !c.MovePageUp(2) {
		t.Fatalf("expected movement on page up")
	}
	if c.Index != 2 {
		t.Fatalf("expected cursor 2 after page up, got %d", c.Index)
	}
	if !c.MovePageUp(10) {
		t.Fatalf("expected movement when page larger than rows")
	}
	if c.Index != 0 {
		t.Fatalf("expected cursor 0, got %d", c.Index)
	}
}

func TestSetLenClamps(t *testing.T) {
	c := NewCursor(10, 9)
	c.SetLen(4)
	if c.Index != 3 {
		t.Fatalf("expected cursor clamped to 3, got %d", c.Index)
	}
	c.SetLen(0)
	if c.Index != 0 {
		t.Fatalf("expected cursor reset, got %d", c.Index)
	}
}

func TestEnsureVisible(t *testing.T) {
	c := NewCursor(10, 7)
	c.EnsureVisible(3)
	if c.ViewportOffset != 5 {
		t.Fatalf("expected offset 5, got %d", c.ViewportOffset)
	}
	c.Set(1)
	c.EnsureVisible(3)
	if c.ViewportOffset != 1 {
		t.Fatalf("expected offset 1, got %d", c.ViewportOffset)
	}
	c.EnsureVisible(0)
	if c.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when unbounded, got %d", c.ViewportOffset)
	}
}

func TestWindow(t *testing.T) {
	c := NewCursor(10, 9)
	start, end := c.Window(4)
	if start != 6 || end != 10 {
		t.Fatalf("expected window [6,10), got [%d,%d)", start, end)
	}
	start, end = c.Window(20)
	if start != 0 || end != 10 {
		t.Fatalf("expected full window, got [%d,%d)", start, end)
	}
}
