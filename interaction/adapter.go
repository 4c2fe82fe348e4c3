// Package interaction translates pointer events into connection state machine
// calls. It hit-tests the host's live shape list on every move and, when a
// gesture completes on a valid target, materializes the edge record and hands
// it to the host.
package interaction

import (
	"github.com/google/uuid"

	"tether/connect"
	"tether/diagram"
	"tether/geometry"
	"tether/handles"
)

// Adapter wires pointer events to a Connector. All collaborators are
// injected: the shape source and edge sink belong to the host document, the
// view transform to the host's camera. One adapter serves one editor session
// and is driven from a single event loop; it is not safe for concurrent use.
type Adapter struct {
	connector *connect.Connector
	shapes    diagram.ShapeSource
	view      diagram.ViewTransform
	sink      diagram.EdgeSink
	opts      Options
}

// NewAdapter creates an adapter around an explicitly constructed connector.
func NewAdapter(c *connect.Connector, shapes diagram.ShapeSource, view diagram.ViewTransform, sink diagram.EdgeSink, opts Options) *Adapter {
	a := &Adapter{
		connector: c,
		shapes:    shapes,
		view:      view,
		sink:      sink,
	}
	a.SetOptions(opts)
	return a
}

// Options returns the current configuration.
func (a *Adapter) Options() Options {
	return a.opts
}

// SetOptions replaces the configuration. Takes effect on the next event.
func (a *Adapter) SetOptions(opts Options) {
	a.opts = opts
	a.connector.SetValidation(opts.ConnectionValidation)
}

// IsConnecting reports whether a connection gesture is in progress, for the
// host to alter cursor and UI affordances.
func (a *Adapter) IsConnecting() bool {
	return a.connector.IsConnecting()
}

// Preview returns the current gesture preview for rendering, or nil when no
// gesture is active or visual feedback is disabled.
func (a *Adapter) Preview() *connect.Preview {
	if !a.opts.VisualFeedback {
		return nil
	}
	return a.connector.Preview()
}

// PressHandle starts a connection gesture from the given handle. The node is
// resolved against the live shape list; an unknown node or handle is rejected
// before the state machine is touched. Returns whether a gesture started.
func (a *Adapter) PressHandle(nodeID, handleID string, screenX, screenY int) bool {
	node, ok := a.findShape(nodeID)
	if !ok {
		return false
	}
	if _, ok := handles.Find(node, handleID); !ok {
		return false
	}

	pos := a.view.ToLogical(screenX, screenY)
	_, started := a.connector.Start(node, handleID, pos)
	return started
}

// Move updates the active gesture with the pointer position and the best
// snap candidate under it. Returns the refreshed preview, or nil when no
// gesture is active.
func (a *Adapter) Move(screenX, screenY int) *connect.Preview {
	if !a.connector.IsConnecting() {
		return nil
	}

	pos := a.view.ToLogical(screenX, screenY)
	node, handleID := a.hitTest(pos)
	return a.connector.Update(pos, node, handleID)
}

// Release finishes the active gesture at the pointer position. If a
// qualifying (node, handle) pair is under the pointer the gesture completes
// against it; releasing over empty space, or over a shape with no handle in
// range, cancels. Returns true iff an edge was added to the host.
func (a *Adapter) Release(screenX, screenY int) bool {
	if !a.connector.IsConnecting() {
		return false
	}

	pos := a.view.ToLogical(screenX, screenY)
	node, handleID := a.hitTest(pos)
	if node == nil {
		a.connector.Cancel()
		return false
	}
	return a.complete(node, handleID)
}

// ReleaseOnHandle finishes the active gesture by dropping directly onto a
// rendered handle element, bypassing the proximity search. Returns true iff
// an edge was added to the host.
func (a *Adapter) ReleaseOnHandle(nodeID, handleID string) bool {
	if !a.connector.IsConnecting() {
		return false
	}

	node, ok := a.findShape(nodeID)
	if !ok {
		a.connector.Cancel()
		return false
	}
	if _, ok := handles.Find(node, handleID); !ok {
		a.connector.Cancel()
		return false
	}
	return a.complete(&node, handleID)
}

// ReleaseLost cancels the active gesture when the pointer is released
// somewhere the adapter cannot see (outside the canvas, focus loss). Always
// returns the machine to idle; safe to call when already idle.
func (a *Adapter) ReleaseLost() {
	a.connector.Cancel()
}

// complete runs the state machine's completion and, on a valid result,
// materializes the edge record and hands it to the host.
func (a *Adapter) complete(node *diagram.Node, handleID string) bool {
	result := a.connector.Complete(node, handleID)
	if !result.Valid {
		return false
	}

	a.sink.AddEdge(diagram.Edge{
		ID:           uuid.NewString(),
		Source:       result.Source.NodeID,
		Target:       result.Target.NodeID,
		SourceHandle: result.Source.Handle,
		TargetHandle: result.Target.Handle,
		Kind:         diagram.RoutingOrthogonal,
		Waypoints:    []diagram.Point{},
		AutoRouted:   true,
	})
	return true
}

// hitTest finds the snap candidate at a logical position: the first shape in
// iteration order whose bounding box contains the point, and the nearest of
// its handles within the snap threshold. Overlapping shapes are not
// arbitrated; the earlier shape wins.
func (a *Adapter) hitTest(pos diagram.Point) (*diagram.Node, string) {
	threshold := a.opts.ConnectionPointRadius * 2
	if !a.opts.SmartAttachment {
		// Without smart attachment the pointer has to be on the handle.
		threshold = a.opts.ConnectionPointRadius
	}

	for _, node := range a.shapes.CurrentShapes() {
		if !geometry.ContainsPoint(node.Bounds(), pos) {
			continue
		}
		h, ok := geometry.NearestHandle(handles.ForNode(node), pos, threshold)
		if !ok {
			return nil, ""
		}
		n := node
		return &n, h.ID
	}
	return nil, ""
}

func (a *Adapter) findShape(nodeID string) (diagram.Node, bool) {
	for _, node := range a.shapes.CurrentShapes() {
		if node.ID == nodeID {
			return node, true
		}
	}
	return diagram.Node{}, false
}
