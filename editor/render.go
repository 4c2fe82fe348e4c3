package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tether/diagram"
	"tether/handles"
)

var (
	styleNode      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleEdge      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHandle    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	stylePreviewOK = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePreviewNo = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// draw renders the whole frame: edges under nodes, handles and the gesture
// preview on top, status bar last.
func (e *Editor) draw() {
	if e.screen == nil {
		return
	}
	e.screen.Clear()

	d := e.doc.Diagram()
	for _, edge := range d.Edges {
		e.drawEdge(edge)
	}
	for _, n := range d.Nodes {
		e.drawNode(n)
	}
	if e.cfg.Editor.ShowHandles || e.adapter.IsConnecting() {
		for _, n := range d.Nodes {
			e.drawHandles(n)
		}
	}
	e.drawPreview()
	e.drawStatus()

	e.screen.Show()
}

// drawNode draws a node as a box with its label centered.
func (e *Editor) drawNode(n diagram.Node) {
	x0, y0 := e.view.ToScreen(n.Position)
	x1, y1 := e.view.ToScreen(diagram.Point{X: n.Position.X + n.Size.Width, Y: n.Position.Y + n.Size.Height})
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for x := x0 + 1; x < x1; x++ {
		e.set(x, y0, '─', styleNode)
		e.set(x, y1, '─', styleNode)
	}
	for y := y0 + 1; y < y1; y++ {
		e.set(x0, y, '│', styleNode)
		e.set(x1, y, '│', styleNode)
	}
	e.set(x0, y0, '┌', styleNode)
	e.set(x1, y0, '┐', styleNode)
	e.set(x0, y1, '└', styleNode)
	e.set(x1, y1, '┘', styleNode)

	label := n.Label
	if label == "" {
		label = n.ID
	}
	maxLen := x1 - x0 - 1
	if maxLen > 0 && len(label) > maxLen {
		label = label[:maxLen]
	}
	lx := x0 + (x1-x0-len(label))/2 + 1
	ly := (y0 + y1) / 2
	for i, r := range label {
		e.set(lx+i, ly, r, styleNode)
	}
}

// drawHandles marks the node's connection points. The current snap candidate
// is highlighted according to preview validity.
func (e *Editor) drawHandles(n diagram.Node) {
	preview := e.adapter.Preview()
	for _, h := range handles.ForNode(n) {
		x, y := e.view.ToScreen(h.Point)
		style := styleHandle
		ch := '◦'
		if preview != nil && preview.Candidate != nil &&
			preview.Candidate.NodeID == n.ID && preview.Candidate.Handle == h.ID {
			ch = '●'
			if preview.Valid {
				style = stylePreviewOK
			} else {
				style = stylePreviewNo
			}
		}
		e.set(x, y, ch, style)
	}
}

// drawEdge draws an edge's waypoint polyline. Edges without waypoints fall
// back to a straight segment between their handle points.
func (e *Editor) drawEdge(edge diagram.Edge) {
	points := edge.Waypoints
	if len(points) < 2 {
		d := e.doc.Diagram()
		source, ok := d.FindNode(edge.Source)
		if !ok {
			return
		}
		target, ok := d.FindNode(edge.Target)
		if !ok {
			return
		}
		sh, ok := handles.Find(source, edge.SourceHandle)
		if !ok {
			return
		}
		th, ok := handles.Find(target, edge.TargetHandle)
		if !ok {
			return
		}
		points = []diagram.Point{sh.Point, th.Point}
	}

	for i := 0; i < len(points)-1; i++ {
		e.drawSegment(points[i], points[i+1], i == len(points)-2)
	}
	for i := 1; i < len(points)-1; i++ {
		x, y := e.view.ToScreen(points[i])
		e.set(x, y, '+', styleEdge)
	}
}

// drawSegment draws one orthogonal segment, with an arrowhead on the last.
func (e *Editor) drawSegment(a, b diagram.Point, last bool) {
	ax, ay := e.view.ToScreen(a)
	bx, by := e.view.ToScreen(b)

	if ay == by {
		step := 1
		if bx < ax {
			step = -1
		}
		for x := ax; x != bx; x += step {
			e.set(x, ay, '─', styleEdge)
		}
		if last {
			arrow := '▶'
			if step < 0 {
				arrow = '◀'
			}
			e.set(bx, by, arrow, styleEdge)
		}
		return
	}

	step := 1
	if by < ay {
		step = -1
	}
	for y := ay; y != by; y += step {
		e.set(ax, y, '│', styleEdge)
	}
	if last {
		arrow := '▼'
		if step < 0 {
			arrow = '▲'
		}
		e.set(bx, by, arrow, styleEdge)
	}
}

// drawPreview draws the rubber band from the gesture's source handle to the
// pointer.
func (e *Editor) drawPreview() {
	preview := e.adapter.Preview()
	if preview == nil {
		return
	}
	gesture, ok := e.conn.Gesture()
	if !ok {
		return
	}
	sh, ok := handles.Find(gesture.SourceNode, gesture.SourceHandle)
	if !ok {
		return
	}

	style := stylePreviewNo
	if preview.Valid {
		style = stylePreviewOK
	}

	// Dotted line, pointer cell marked.
	x0, y0 := e.view.ToScreen(sh.Point)
	x1, y1 := e.view.ToScreen(preview.Position)
	e.dottedLine(x0, y0, x1, y1, style)
	e.set(x1, y1, '+', style)
}

// dottedLine draws a Bresenham line of dots between two cells.
func (e *Editor) dottedLine(x0, y0, x1, y1 int, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		e.set(x, y, '·', style)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawStatus renders the bottom status bar.
func (e *Editor) drawStatus() {
	width, height := e.screen.Size()
	y := height - 1

	mode := "IDLE"
	if e.adapter.IsConnecting() {
		mode = "CONNECTING"
	}
	text := []rune(fmt.Sprintf(" %s  %s  [n]ode [s]ave [u]ndo [r]edo [q]uit  %s", mode, e.path, e.status))
	for x := 0; x < width; x++ {
		ch := ' '
		if x < len(text) {
			ch = text[x]
		}
		e.set(x, y, ch, styleStatus)
	}
}

func (e *Editor) set(x, y int, ch rune, style tcell.Style) {
	e.screen.SetContent(x, y, ch, nil, style)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
