package diagram

// ShapeSource provides the live, ordered list of shapes in the host document.
// The connection engine queries it fresh on every hit-test and never caches
// the result across calls.
type ShapeSource interface {
	// CurrentShapes returns the shapes in a stable iteration order.
	CurrentShapes() []Node
}

// EdgeSink accepts finished edges. The host owns persistence and undo; from
// the engine's point of view AddEdge is fire-and-forget.
type EdgeSink interface {
	AddEdge(e Edge)
}

// ViewTransform converts screen coordinates to logical diagram coordinates.
// Supplied by the host's viewport/camera.
type ViewTransform interface {
	ToLogical(screenX, screenY int) Point
}

// EdgeRouter computes an orthogonal waypoint path between two logical points.
type EdgeRouter interface {
	Route(start, end Point) []Point
}
