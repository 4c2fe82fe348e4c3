package document

import (
	"strings"
	"testing"

	"tether/diagram"
)

func validateDoc(t *testing.T, dg diagram.Diagram) []error {
	t.Helper()
	d := NewDocument(nil)
	d.SetDiagram(&dg)
	return d.Validate()
}

func wantOneError(t *testing.T, errs []error, substr string) {
	t.Helper()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), substr) {
		t.Errorf("error %q does not mention %q", errs[0], substr)
	}
}

func TestValidate(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "a", Position: diagram.Point{X: 0, Y: 0}, Size: diagram.Size{Width: 20, Height: 10}},
		{ID: "b", Position: diagram.Point{X: 40, Y: 0}, Size: diagram.Size{Width: 20, Height: 10}},
	}

	t.Run("sound diagram", func(t *testing.T) {
		errs := validateDoc(t, diagram.Diagram{
			Nodes: nodes,
			Edges: []diagram.Edge{
				{ID: "e1", Source: "a", SourceHandle: "right", Target: "b", TargetHandle: "left"},
			},
		})
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
	})

	t.Run("edge names a missing node", func(t *testing.T) {
		errs := validateDoc(t, diagram.Diagram{
			Nodes: nodes,
			Edges: []diagram.Edge{
				{ID: "e1", Source: "a", SourceHandle: "right", Target: "ghost", TargetHandle: "left"},
			},
		})
		wantOneError(t, errs, `missing node "ghost"`)
	})

	t.Run("edge uses an unknown handle", func(t *testing.T) {
		errs := validateDoc(t, diagram.Diagram{
			Nodes: nodes,
			Edges: []diagram.Edge{
				{ID: "e1", Source: "a", SourceHandle: "diagonal", Target: "b", TargetHandle: "left"},
			},
		})
		wantOneError(t, errs, `unknown handle "diagonal"`)
	})

	t.Run("edge missing an endpoint", func(t *testing.T) {
		errs := validateDoc(t, diagram.Diagram{
			Nodes: nodes,
			Edges: []diagram.Edge{
				{ID: "e1", Source: "a", SourceHandle: "right"},
			},
		})
		wantOneError(t, errs, "missing an endpoint")
	})

	t.Run("duplicate node ID", func(t *testing.T) {
		errs := validateDoc(t, diagram.Diagram{
			Nodes: append(nodes, diagram.Node{ID: "a"}),
		})
		wantOneError(t, errs, `duplicate node ID "a"`)
	})

	t.Run("empty node ID", func(t *testing.T) {
		errs := validateDoc(t, diagram.Diagram{
			Nodes: []diagram.Node{{ID: ""}},
		})
		wantOneError(t, errs, "empty ID")
	})
}
