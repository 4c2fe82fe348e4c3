package editor

import (
	"math"

	"tether/diagram"
)

// View maps terminal cells to logical diagram coordinates. It implements
// diagram.ViewTransform for the interaction adapter.
type View struct {
	OffsetX, OffsetY float64 // logical coordinate of cell (0,0)
	Scale            float64 // logical units per cell
}

// NewView creates a view anchored at the logical origin.
func NewView(scale float64) *View {
	if scale <= 0 {
		scale = 1
	}
	return &View{Scale: scale}
}

// ToLogical converts a terminal cell position to logical coordinates.
func (v *View) ToLogical(screenX, screenY int) diagram.Point {
	return diagram.Point{
		X: v.OffsetX + float64(screenX)*v.Scale,
		Y: v.OffsetY + float64(screenY)*v.Scale,
	}
}

// ToScreen converts a logical point to the nearest terminal cell.
func (v *View) ToScreen(p diagram.Point) (int, int) {
	x := int(math.Round((p.X - v.OffsetX) / v.Scale))
	y := int(math.Round((p.Y - v.OffsetY) / v.Scale))
	return x, y
}

// Pan shifts the view by a number of cells.
func (v *View) Pan(dxCells, dyCells int) {
	v.OffsetX += float64(dxCells) * v.Scale
	v.OffsetY += float64(dyCells) * v.Scale
}
