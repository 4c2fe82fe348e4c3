// Package handles computes the connection points on a node's perimeter.
package handles

import "tether/diagram"

// Handle identifiers, one per side midpoint.
const (
	Top    = "top"
	Right  = "right"
	Bottom = "bottom"
	Left   = "left"
)

// ForNode returns the node's attachment points in a fixed order: top, right,
// bottom, left. Positions are computed from the node's current bounds on
// every call — nodes move between calls, so results must never be cached
// across gestures.
func ForNode(n diagram.Node) []diagram.Handle {
	b := n.Bounds()
	return []diagram.Handle{
		{ID: Top, Point: diagram.Point{X: b.X + b.Width/2, Y: b.Y}},
		{ID: Right, Point: diagram.Point{X: b.X + b.Width, Y: b.Y + b.Height/2}},
		{ID: Bottom, Point: diagram.Point{X: b.X + b.Width/2, Y: b.Y + b.Height}},
		{ID: Left, Point: diagram.Point{X: b.X, Y: b.Y + b.Height/2}},
	}
}

// Find returns the handle with the given ID on the node, or false if the ID
// is not one of the node's handles.
func Find(n diagram.Node, id string) (diagram.Handle, bool) {
	for _, h := range ForNode(n) {
		if h.ID == id {
			return h, true
		}
	}
	return diagram.Handle{}, false
}
