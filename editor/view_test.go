package editor

import (
	"testing"

	"tether/diagram"
)

func TestViewToLogical(t *testing.T) {
	v := NewView(2)
	v.OffsetX, v.OffsetY = 10, 20

	p := v.ToLogical(5, 3)
	if p != (diagram.Point{X: 20, Y: 26}) {
		t.Errorf("ToLogical = %+v", p)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := NewView(2)
	v.OffsetX, v.OffsetY = -14, 6

	for _, cell := range []struct{ x, y int }{{0, 0}, {7, 3}, {80, 24}} {
		p := v.ToLogical(cell.x, cell.y)
		x, y := v.ToScreen(p)
		if x != cell.x || y != cell.y {
			t.Errorf("cell (%d,%d) round-tripped to (%d,%d)", cell.x, cell.y, x, y)
		}
	}
}

func TestViewPan(t *testing.T) {
	v := NewView(2)
	before := v.ToLogical(0, 0)
	v.Pan(3, -2)
	after := v.ToLogical(0, 0)

	if after.X-before.X != 6 || after.Y-before.Y != -4 {
		t.Errorf("pan moved origin by (%v,%v)", after.X-before.X, after.Y-before.Y)
	}
}

func TestViewRejectsBadScale(t *testing.T) {
	v := NewView(0)
	if v.Scale != 1 {
		t.Errorf("scale = %v, want fallback 1", v.Scale)
	}
}
