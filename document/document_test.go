package document

import (
	"os"
	"path/filepath"
	"testing"

	"tether/diagram"
	"tether/pathfinding"
)

func newTestDocument() *Document {
	return NewDocument(pathfinding.NewDirectRouter(pathfinding.HorizontalFirst))
}

func addTwoNodes(d *Document) {
	d.AddNode(diagram.NewNode("a", diagram.Point{X: 0, Y: 0}))
	d.AddNode(diagram.NewNode("b", diagram.Point{X: 200, Y: 100}))
}

func autoEdge(id string) diagram.Edge {
	return diagram.Edge{
		ID:           id,
		Source:       "a",
		Target:       "b",
		SourceHandle: "right",
		TargetHandle: "left",
		Kind:         diagram.RoutingOrthogonal,
		Waypoints:    []diagram.Point{},
		AutoRouted:   true,
	}
}

func TestAddEdgeRoutesAutoRoutedEdges(t *testing.T) {
	d := newTestDocument()
	addTwoNodes(d)

	d.AddEdge(autoEdge("e1"))

	edges := d.Diagram().Edges
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	wps := edges[0].Waypoints
	if len(wps) < 2 {
		t.Fatalf("auto-routed edge has no waypoints: %v", wps)
	}
	// From a's right handle (100,50) to b's left handle (200,150).
	if wps[0] != (diagram.Point{X: 100, Y: 50}) {
		t.Errorf("path starts at %+v", wps[0])
	}
	if wps[len(wps)-1] != (diagram.Point{X: 200, Y: 150}) {
		t.Errorf("path ends at %+v", wps[len(wps)-1])
	}
	for i := 0; i < len(wps)-1; i++ {
		if wps[i].X != wps[i+1].X && wps[i].Y != wps[i+1].Y {
			t.Errorf("segment %d not orthogonal: %v -> %v", i, wps[i], wps[i+1])
		}
	}
}

func TestAddEdgeLeavesManualWaypoints(t *testing.T) {
	d := newTestDocument()
	addTwoNodes(d)

	manual := autoEdge("e1")
	manual.AutoRouted = false
	manual.Waypoints = []diagram.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	d.AddEdge(manual)

	got := d.Diagram().Edges[0].Waypoints
	if len(got) != 2 || got[0] != (diagram.Point{X: 1, Y: 2}) {
		t.Errorf("manual waypoints were rewritten: %v", got)
	}
}

func TestMoveNodeReroutesAttachedEdges(t *testing.T) {
	d := newTestDocument()
	addTwoNodes(d)
	d.AddEdge(autoEdge("e1"))

	before := d.Diagram().Edges[0].Waypoints[len(d.Diagram().Edges[0].Waypoints)-1]

	d.MoveNode("b", diagram.Point{X: 400, Y: 300})

	wps := d.Diagram().Edges[0].Waypoints
	after := wps[len(wps)-1]
	if after == before {
		t.Error("edge was not re-routed when its target moved")
	}
	if after != (diagram.Point{X: 400, Y: 350}) {
		t.Errorf("path ends at %+v after the move", after)
	}
}

func TestDeleteNodeCascadesEdges(t *testing.T) {
	d := newTestDocument()
	addTwoNodes(d)
	d.AddNode(diagram.NewNode("c", diagram.Point{X: 400, Y: 0}))
	d.AddEdge(autoEdge("e1"))

	bc := autoEdge("e2")
	bc.Source = "b"
	bc.Target = "c"
	d.AddEdge(bc)

	d.DeleteNode("b")

	if _, ok := d.Diagram().FindNode("b"); ok {
		t.Error("node b still present")
	}
	if len(d.Diagram().Edges) != 0 {
		t.Errorf("edges touching b survived: %+v", d.Diagram().Edges)
	}
	if _, ok := d.Diagram().FindNode("c"); !ok {
		t.Error("unrelated node c was removed")
	}
}

func TestUndoRedo(t *testing.T) {
	d := newTestDocument()
	addTwoNodes(d)
	d.AddEdge(autoEdge("e1"))

	if !d.Undo() {
		t.Fatal("undo failed")
	}
	if len(d.Diagram().Edges) != 0 {
		t.Error("undo did not remove the edge")
	}
	if len(d.Diagram().Nodes) != 2 {
		t.Error("undo went too far")
	}

	if !d.Redo() {
		t.Fatal("redo failed")
	}
	if len(d.Diagram().Edges) != 1 {
		t.Error("redo did not restore the edge")
	}
}

func TestUndoAtStartIsNoOp(t *testing.T) {
	d := newTestDocument()
	if d.Undo() {
		t.Error("undo on a fresh document should report false")
	}
	if d.Redo() {
		t.Error("redo on a fresh document should report false")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.json")

	d := newTestDocument()
	addTwoNodes(d)
	d.AddEdge(autoEdge("e1"))
	if err := d.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := newTestDocument()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded.Diagram().Nodes) != 2 || len(loaded.Diagram().Edges) != 1 {
		t.Fatalf("loaded %d nodes, %d edges", len(loaded.Diagram().Nodes), len(loaded.Diagram().Edges))
	}
	e := loaded.Diagram().Edges[0]
	if e.Source != "a" || e.TargetHandle != "left" || e.Kind != diagram.RoutingOrthogonal {
		t.Errorf("edge did not round-trip: %+v", e)
	}
}

func TestLoadDefaultsMissingNodeSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.json")

	raw := `{"nodes":[{"id":"bare","position":{"x":5,"y":5}}],"edges":[]}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded := newTestDocument()
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	n, _ := loaded.Diagram().FindNode("bare")
	if n.Size != diagram.DefaultNodeSize {
		t.Errorf("size = %+v, want default", n.Size)
	}
}

func TestHistoryDeepCopies(t *testing.T) {
	d := newTestDocument()
	addTwoNodes(d)
	d.AddEdge(autoEdge("e1"))

	// Mutating the live diagram must not corrupt the saved state.
	d.Diagram().Edges[0].Waypoints[0] = diagram.Point{X: -999, Y: -999}
	d.Undo()
	d.Redo()

	if d.Diagram().Edges[0].Waypoints[0] == (diagram.Point{X: -999, Y: -999}) {
		t.Error("history shared waypoint storage with the live diagram")
	}
}
