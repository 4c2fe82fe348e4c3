// Package editor is the terminal shell around the connection engine: a tcell
// screen that renders the diagram and feeds mouse events into the
// interaction adapter.
package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tether/config"
	"tether/connect"
	"tether/diagram"
	"tether/document"
	"tether/geometry"
	"tether/handles"
	"tether/interaction"
)

// Editor drives one editing session over a tcell screen.
type Editor struct {
	screen  tcell.Screen
	doc     *document.Document
	conn    *connect.Connector
	adapter *interaction.Adapter
	view    *View
	cfg     config.Config
	path    string
	status  string

	// Mouse state. tcell reports the current button mask on every event;
	// press and release are detected from mask transitions.
	lastButtons tcell.ButtonMask
	dragNodeID  string
	dragOffset  diagram.Point

	nextNodeNum int
}

// NewEditor creates an editor for the given document. The connector and
// adapter are constructed here and owned by the editor for the session.
func NewEditor(doc *document.Document, cfg config.Config, path string) *Editor {
	conn := connect.NewConnector()
	view := NewView(cfg.Editor.Scale)
	return &Editor{
		doc:         doc,
		conn:        conn,
		adapter:     interaction.NewAdapter(conn, doc, view, doc, cfg.Interaction),
		view:        view,
		cfg:         cfg,
		path:        path,
		nextNodeNum: len(doc.Diagram().Nodes) + 1,
	}
}

// Adapter returns the editor's interaction adapter.
func (e *Editor) Adapter() *interaction.Adapter {
	return e.adapter
}

// Run initializes the terminal and processes events until quit.
func (e *Editor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.EnableFocus()
	e.screen = screen

	for {
		e.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			e.handleMouse(x, y, ev.Buttons())
		case *tcell.EventFocus:
			// Losing focus mid-drag means the release will never
			// arrive; resolve the gesture now.
			if !ev.Focused {
				e.pointerLost()
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// handleKey processes one key event. Returns true to quit.
func (e *Editor) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		e.pointerLost()
		return false
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		e.view.Pan(-2, 0)
	case tcell.KeyRight:
		e.view.Pan(2, 0)
	case tcell.KeyUp:
		e.view.Pan(0, -1)
	case tcell.KeyDown:
		e.view.Pan(0, 1)
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'n':
		e.addNode()
	case 'u':
		if e.doc.Undo() {
			e.status = "undo"
		}
	case 'r':
		if e.doc.Redo() {
			e.status = "redo"
		}
	case 's':
		if e.path == "" {
			e.status = "no file"
			break
		}
		if err := e.doc.Save(e.path); err != nil {
			e.status = fmt.Sprintf("save failed: %v", err)
		} else {
			e.status = "saved " + e.path
		}
	}
	return false
}

// handleMouse processes one mouse event, detecting press/drag/release from
// button mask transitions.
func (e *Editor) handleMouse(x, y int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0
	wasPressed := e.lastButtons&tcell.Button1 != 0
	rightPressed := buttons&tcell.Button3 != 0 && e.lastButtons&tcell.Button3 == 0
	e.lastButtons = buttons

	switch {
	case pressed && !wasPressed:
		e.press(x, y)
	case pressed && wasPressed:
		e.drag(x, y)
	case !pressed && wasPressed:
		e.release(x, y)
	}

	if rightPressed {
		e.deleteAt(x, y)
	}
}

// press starts either a connection gesture (pointer on a handle) or a node
// drag (pointer on a node body).
func (e *Editor) press(x, y int) {
	if nodeID, handleID, ok := e.handleAt(x, y); ok {
		if e.adapter.PressHandle(nodeID, handleID, x, y) {
			e.status = "connecting from " + nodeID + ":" + handleID
		}
		return
	}

	pos := e.view.ToLogical(x, y)
	for _, n := range e.doc.CurrentShapes() {
		if geometry.ContainsPoint(n.Bounds(), pos) {
			e.dragNodeID = n.ID
			e.dragOffset = diagram.Point{X: pos.X - n.Position.X, Y: pos.Y - n.Position.Y}
			return
		}
	}
}

func (e *Editor) drag(x, y int) {
	if e.adapter.IsConnecting() {
		e.adapter.Move(x, y)
		return
	}
	if e.dragNodeID != "" {
		pos := e.view.ToLogical(x, y)
		e.doc.MoveNode(e.dragNodeID, diagram.Point{X: pos.X - e.dragOffset.X, Y: pos.Y - e.dragOffset.Y})
	}
}

func (e *Editor) release(x, y int) {
	if e.adapter.IsConnecting() {
		// Releasing on a rendered handle marker is a direct drop onto
		// that handle; anywhere else falls back to proximity search.
		var connected bool
		if nodeID, handleID, ok := e.handleAt(x, y); ok {
			connected = e.adapter.ReleaseOnHandle(nodeID, handleID)
		} else {
			connected = e.adapter.Release(x, y)
		}
		if connected {
			e.status = "connected"
		} else {
			e.status = "cancelled"
		}
		return
	}
	if e.dragNodeID != "" {
		e.doc.SaveHistory()
		e.dragNodeID = ""
	}
}

// pointerLost resolves any in-flight interaction when the pointer can no
// longer be tracked (ESC pressed, terminal focus lost).
func (e *Editor) pointerLost() {
	if e.adapter.IsConnecting() {
		e.adapter.ReleaseLost()
		e.status = "cancelled"
	}
	e.dragNodeID = ""
}

// handleAt returns the node and handle whose rendered marker sits at or
// adjacent to the given cell. Targeting is done in screen space: the logical
// snap radius only governs drag hit-testing, so a generous radius cannot
// swallow a node's body and make it undraggable.
func (e *Editor) handleAt(x, y int) (nodeID, handleID string, ok bool) {
	for _, n := range e.doc.CurrentShapes() {
		for _, h := range handles.ForNode(n) {
			hx, hy := e.view.ToScreen(h.Point)
			if abs(hx-x) <= 1 && abs(hy-y) <= 1 {
				return n.ID, h.ID, true
			}
		}
	}
	return "", "", false
}

// addNode creates a node near the view origin, staggered so consecutive
// nodes don't stack.
func (e *Editor) addNode() {
	id := fmt.Sprintf("n%d", e.nextNodeNum)
	offset := float64(e.nextNodeNum-1) * 4 * e.view.Scale
	e.nextNodeNum++

	n := diagram.Node{
		ID:       id,
		Label:    id,
		Position: diagram.Point{X: e.view.OffsetX + 4*e.view.Scale + offset, Y: e.view.OffsetY + 2*e.view.Scale + offset},
		Size:     diagram.Size{Width: 16 * e.view.Scale, Height: 5 * e.view.Scale},
	}
	e.doc.AddNode(n)
	e.status = "added " + id
}

// deleteAt removes the node under the pointer along with its edges.
func (e *Editor) deleteAt(x, y int) {
	pos := e.view.ToLogical(x, y)
	for _, n := range e.doc.CurrentShapes() {
		if geometry.ContainsPoint(n.Bounds(), pos) {
			e.doc.DeleteNode(n.ID)
			e.status = "deleted " + n.ID
			return
		}
	}
}
