package handles

import (
	"testing"

	"tether/diagram"
)

func TestForNode(t *testing.T) {
	n := diagram.Node{
		ID:       "a",
		Position: diagram.Point{X: 10, Y: 20},
		Size:     diagram.Size{Width: 100, Height: 60},
	}

	hs := ForNode(n)
	if len(hs) != 4 {
		t.Fatalf("expected 4 handles, got %d", len(hs))
	}

	want := map[string]diagram.Point{
		Top:    {X: 60, Y: 20},
		Right:  {X: 110, Y: 50},
		Bottom: {X: 60, Y: 80},
		Left:   {X: 10, Y: 50},
	}
	order := []string{Top, Right, Bottom, Left}

	for i, h := range hs {
		if h.ID != order[i] {
			t.Errorf("handle %d: got %q, want %q", i, h.ID, order[i])
		}
		if h.Point != want[h.ID] {
			t.Errorf("handle %q at %+v, want %+v", h.ID, h.Point, want[h.ID])
		}
	}
}

func TestForNodeFollowsMovement(t *testing.T) {
	n := diagram.NewNode("a", diagram.Point{X: 0, Y: 0})

	before := ForNode(n)
	n.Position = diagram.Point{X: 200, Y: 300}
	after := ForNode(n)

	for i := range before {
		if before[i].Point == after[i].Point {
			t.Errorf("handle %q did not follow the node", before[i].ID)
		}
	}
	if after[0].Point != (diagram.Point{X: 250, Y: 300}) {
		t.Errorf("top handle at %+v after move", after[0].Point)
	}
}

func TestFind(t *testing.T) {
	n := diagram.NewNode("a", diagram.Point{X: 0, Y: 0})

	h, ok := Find(n, Right)
	if !ok || h.ID != Right {
		t.Fatalf("Find(right) = (%q, %v)", h.ID, ok)
	}
	if h.Point != (diagram.Point{X: 100, Y: 50}) {
		t.Errorf("right handle at %+v for a default-size node", h.Point)
	}

	if _, ok := Find(n, "nope"); ok {
		t.Error("Find should reject unknown handle IDs")
	}
}
