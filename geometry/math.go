// Package geometry provides the pure hit-testing math for the connection
// engine: rectangle containment and nearest-handle search. No state, no side
// effects.
package geometry

import (
	"math"

	"tether/diagram"
)

// Abs returns the absolute value of a float.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b diagram.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ContainsPoint reports whether p lies inside r. Both intervals are closed:
// a point exactly on the boundary counts as inside, so handles sitting on a
// node's edge still register.
func ContainsPoint(r diagram.Rect, p diagram.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// NearestHandle returns the handle closest to p, provided that the minimum
// distance is at most maxDistance. Handles are scanned in slice order and
// ties go to the first handle seen, so the caller's ordering is the
// tie-break contract.
func NearestHandle(hs []diagram.Handle, p diagram.Point, maxDistance float64) (diagram.Handle, bool) {
	var best diagram.Handle
	bestDist := math.Inf(1)
	for _, h := range hs {
		if d := Distance(h.Point, p); d < bestDist {
			best = h
			bestDist = d
		}
	}
	if bestDist > maxDistance {
		return diagram.Handle{}, false
	}
	return best, true
}
