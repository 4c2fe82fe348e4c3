// Package diagram contains the fundamental types used throughout the tether editor.
package diagram

// Point represents a 2D coordinate in logical diagram space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size represents the dimensions of a node.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultNodeSize is applied when a node is created without explicit dimensions.
var DefaultNodeSize = Size{Width: 100, Height: 100}

// Rect represents an axis-aligned rectangular area in logical space.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Node represents a shape on the canvas. The connection engine treats nodes as
// read-only: position and size are owned by the host document.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	Position Point  `json:"position"`
	Size     Size   `json:"size"`
}

// NewNode creates a node at the given position with the default size.
func NewNode(id string, pos Point) Node {
	return Node{ID: id, Position: pos, Size: DefaultNodeSize}
}

// Normalize fills in the default size for nodes loaded without one.
func (n *Node) Normalize() {
	if n.Size.Width <= 0 {
		n.Size.Width = DefaultNodeSize.Width
	}
	if n.Size.Height <= 0 {
		n.Size.Height = DefaultNodeSize.Height
	}
}

// Bounds returns the node's bounding rectangle.
func (n Node) Bounds() Rect {
	return Rect{X: n.Position.X, Y: n.Position.Y, Width: n.Size.Width, Height: n.Size.Height}
}

// Center returns the center point of the node.
func (n Node) Center() Point {
	return Point{
		X: n.Position.X + n.Size.Width/2,
		Y: n.Position.Y + n.Size.Height/2,
	}
}

// Handle is a named attachment point on a node's perimeter. Handle positions
// are resolved on demand from the node's current bounds and are never cached
// across gestures.
type Handle struct {
	ID    string
	Point Point
}

// RoutingKind tags how an edge's path should be computed.
type RoutingKind string

// Routing kind constants.
const (
	RoutingOrthogonal RoutingKind = "orthogonal"
)

// Edge represents a connection between two node handles. An edge is only ever
// created with non-empty source and target endpoints.
type Edge struct {
	ID           string      `json:"id"`
	Source       string      `json:"source"`
	Target       string      `json:"target"`
	SourceHandle string      `json:"sourceHandle"`
	TargetHandle string      `json:"targetHandle"`
	Kind         RoutingKind `json:"kind"`
	Waypoints    []Point     `json:"waypoints"`
	AutoRouted   bool        `json:"autoRouted"`
	Label        string      `json:"label,omitempty"`
}

// Diagram represents a complete diagram with nodes and edges.
type Diagram struct {
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Metadata contains optional diagram metadata.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Created string `json:"created,omitempty"`
	Version string `json:"version,omitempty"`
}

// Clone creates a deep copy of the diagram.
func (d *Diagram) Clone() *Diagram {
	if d == nil {
		return nil
	}

	clone := &Diagram{
		Nodes:    make([]Node, len(d.Nodes)),
		Edges:    make([]Edge, len(d.Edges)),
		Metadata: d.Metadata,
	}
	copy(clone.Nodes, d.Nodes)

	// Edges carry a waypoint slice that needs its own copy.
	for i, e := range d.Edges {
		clone.Edges[i] = e
		if e.Waypoints != nil {
			clone.Edges[i].Waypoints = make([]Point, len(e.Waypoints))
			copy(clone.Edges[i].Waypoints, e.Waypoints)
		}
	}

	return clone
}

// FindNode returns the node with the given ID, or false if it does not exist.
func (d *Diagram) FindNode(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
