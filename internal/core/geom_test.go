package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	inner := outer.Centered(21, 9)
	if inner != NewRect(29, 7, 21, 9) {
		t.Errorf("Centered(21, 9) = %+v, expected {29 7 21 9}", inner)
	}

	tooBig := NewRect(0, 0, 10, 4).Centered(20, 8)
	if tooBig.X != -5 || tooBig.Y != -2 {
		t.Errorf("Centered overflow = %+v, expected negative offset (-5, -2)", tooBig)
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value    int
		expected Color
	}{
		{0, ColorGray},
		{2, ColorWhite},
		{4, ColorYellow},
		{8, ColorOrange},
		{64, ColorBlue},
		{1024, ColorBrightWhite},
		{2048, ColorWhite}, // wraps around
	}

	for _, tc := range tests {
		if got := TileColor(tc.value); got != tc.expected {
			t.Errorf("TileColor(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}

func TestActionIsMove(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsMove() {
			t.Errorf("%s should be a move", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionBack, ActionRestart, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%s should not be a move", a)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("FrameOf(Left) = %v", f.Actions)
	}

	f.Set(ActionUp)
	if !f.Has(ActionLeft) || !f.Has(ActionUp) {
		t.Errorf("Set() should add to the frame: %v", f.Actions)
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set() on zero frame should work")
	}
}
