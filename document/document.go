// Package document is the host side of the connection engine: it owns the
// diagram's nodes and edges, routes auto-routed edges, and provides undo/redo
// and JSON persistence. The interaction adapter only sees it through the
// narrow ShapeSource and EdgeSink interfaces.
package document

import (
	"tether/diagram"
	"tether/handles"
)

// Document owns one diagram for the lifetime of an editing session.
type Document struct {
	diagram *diagram.Diagram
	router  diagram.EdgeRouter
	history *History
}

// NewDocument creates an empty document. The router is used for auto-routed
// orthogonal edges; a nil router leaves waypoints empty.
func NewDocument(router diagram.EdgeRouter) *Document {
	doc := &Document{
		diagram: &diagram.Diagram{},
		router:  router,
		history: NewHistory(50),
	}
	doc.history.SaveState(doc.diagram)
	return doc
}

// SetDiagram replaces the document's diagram, normalizing node sizes.
func (d *Document) SetDiagram(dg *diagram.Diagram) {
	for i := range dg.Nodes {
		dg.Nodes[i].Normalize()
	}
	d.diagram = dg
	d.history.SaveState(dg)
}

// Diagram returns the current diagram.
func (d *Document) Diagram() *diagram.Diagram {
	return d.diagram
}

// CurrentShapes returns the live, ordered node list. Implements
// diagram.ShapeSource.
func (d *Document) CurrentShapes() []diagram.Node {
	return d.diagram.Nodes
}

// AddNode adds a node to the diagram.
func (d *Document) AddNode(n diagram.Node) {
	n.Normalize()
	d.diagram.Nodes = append(d.diagram.Nodes, n)
	d.history.SaveState(d.diagram)
}

// MoveNode repositions a node and re-routes the auto-routed edges attached
// to it. Unknown IDs are ignored. History is not saved here so a continuous
// drag produces one undo step; callers commit with SaveHistory when the drag
// ends.
func (d *Document) MoveNode(id string, pos diagram.Point) {
	moved := false
	for i := range d.diagram.Nodes {
		if d.diagram.Nodes[i].ID == id {
			d.diagram.Nodes[i].Position = pos
			moved = true
			break
		}
	}
	if !moved {
		return
	}

	for i := range d.diagram.Edges {
		e := &d.diagram.Edges[i]
		if e.Source == id || e.Target == id {
			d.routeEdge(e)
		}
	}
}

// SaveHistory records the current state as an undo step.
func (d *Document) SaveHistory() {
	d.history.SaveState(d.diagram)
}

// DeleteNode removes a node and every edge attached to it.
func (d *Document) DeleteNode(id string) {
	nodes := d.diagram.Nodes[:0]
	for _, n := range d.diagram.Nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	d.diagram.Nodes = nodes

	edges := d.diagram.Edges[:0]
	for _, e := range d.diagram.Edges {
		if e.Source != id && e.Target != id {
			edges = append(edges, e)
		}
	}
	d.diagram.Edges = edges

	d.history.SaveState(d.diagram)
}

// AddEdge adds an edge to the diagram, routing it first when it is
// auto-routed. Implements diagram.EdgeSink.
func (d *Document) AddEdge(e diagram.Edge) {
	d.routeEdge(&e)
	d.diagram.Edges = append(d.diagram.Edges, e)
	d.history.SaveState(d.diagram)
}

// DeleteEdge removes the edge with the given ID.
func (d *Document) DeleteEdge(id string) {
	edges := d.diagram.Edges[:0]
	for _, e := range d.diagram.Edges {
		if e.ID != id {
			edges = append(edges, e)
		}
	}
	d.diagram.Edges = edges
	d.history.SaveState(d.diagram)
}

// Undo restores the previous diagram state, if any.
func (d *Document) Undo() bool {
	dg := d.history.Undo()
	if dg == nil {
		return false
	}
	d.diagram = dg
	return true
}

// Redo restores the next diagram state, if any.
func (d *Document) Redo() bool {
	dg := d.history.Redo()
	if dg == nil {
		return false
	}
	d.diagram = dg
	return true
}

// routeEdge recomputes waypoints for an auto-routed orthogonal edge. Edges
// with manual waypoints, or with endpoints that cannot be resolved, are left
// as they are.
func (d *Document) routeEdge(e *diagram.Edge) {
	if !e.AutoRouted || e.Kind != diagram.RoutingOrthogonal || d.router == nil {
		return
	}

	source, ok := d.diagram.FindNode(e.Source)
	if !ok {
		return
	}
	target, ok := d.diagram.FindNode(e.Target)
	if !ok {
		return
	}
	sh, ok := handles.Find(source, e.SourceHandle)
	if !ok {
		return
	}
	th, ok := handles.Find(target, e.TargetHandle)
	if !ok {
		return
	}

	e.Waypoints = d.router.Route(sh.Point, th.Point)
}
