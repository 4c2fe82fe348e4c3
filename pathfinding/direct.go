// Package pathfinding computes orthogonal waypoint paths for auto-routed
// edges. The connection engine only requests routing via an edge's kind tag;
// this package is the collaborator that actually produces the polyline.
package pathfinding

import (
	"tether/diagram"
	"tether/geometry"
)

// Strategy defines how direct paths are routed.
type Strategy int

const (
	// HorizontalFirst routes horizontally then vertically.
	HorizontalFirst Strategy = iota
	// VerticalFirst routes vertically then horizontally.
	VerticalFirst
	// MiddleSplit routes to the midpoint between the endpoints.
	MiddleSplit
)

// DirectRouter creates simple L- or Z-shaped orthogonal paths without
// obstacle avoidance.
type DirectRouter struct {
	strategy Strategy
}

// NewDirectRouter creates a direct router with the given strategy.
func NewDirectRouter(strategy Strategy) *DirectRouter {
	return &DirectRouter{strategy: strategy}
}

// Route returns an orthogonal waypoint path from start to end, including
// both endpoints. Every segment of the result is horizontal or vertical.
func (r *DirectRouter) Route(start, end diagram.Point) []diagram.Point {
	if start == end {
		return []diagram.Point{start}
	}
	if start.X == end.X || start.Y == end.Y {
		// Already aligned.
		return []diagram.Point{start, end}
	}

	switch r.strategy {
	case VerticalFirst:
		corner := diagram.Point{X: start.X, Y: end.Y}
		return []diagram.Point{start, corner, end}
	case MiddleSplit:
		return r.middleSplit(start, end)
	default: // HorizontalFirst
		corner := diagram.Point{X: end.X, Y: start.Y}
		return []diagram.Point{start, corner, end}
	}
}

// middleSplit routes through the midpoint, splitting on the longer axis.
func (r *DirectRouter) middleSplit(start, end diagram.Point) []diagram.Point {
	dx := geometry.Abs(end.X - start.X)
	dy := geometry.Abs(end.Y - start.Y)

	if dx > dy {
		// Wider than tall: split on a vertical midline.
		midX := (start.X + end.X) / 2
		return []diagram.Point{
			start,
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
			end,
		}
	}
	// Taller than wide: split on a horizontal midline.
	midY := (start.Y + end.Y) / 2
	return []diagram.Point{
		start,
		{X: start.X, Y: midY},
		{X: end.X, Y: midY},
		end,
	}
}
