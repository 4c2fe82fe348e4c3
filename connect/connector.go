// Package connect implements the connection gesture state machine: the
// lifecycle of one drag from a source handle to a target handle, and the
// validity decision when the drag completes.
package connect

import "tether/diagram"

// Status represents the state machine's current state.
type Status int

const (
	StatusIdle   Status = iota // No gesture in progress
	StatusActive               // A gesture is being dragged
)

// String returns the status name for display.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// Endpoint identifies one end of a connection: a node and a handle on it.
type Endpoint struct {
	NodeID string
	Handle string
}

// Preview describes the in-progress gesture for visual feedback. It is
// recomputed on every update and never persisted.
type Preview struct {
	Position  diagram.Point
	Candidate *Endpoint // nil when no snap target is in range
	Valid     bool      // whether completing right now would produce an edge
}

// Result is the outcome of completing a gesture. Source and Target are only
// meaningful when Valid is true.
type Result struct {
	Valid  bool
	Source Endpoint
	Target Endpoint
}

// Gesture holds the mutable state of one connection drag. SourceNode and
// SourceHandle are fixed at start; the rest changes on every update.
type Gesture struct {
	SourceNode      diagram.Node
	SourceHandle    string
	Current         diagram.Point
	CandidateNode   *diagram.Node
	CandidateHandle string
}

// Connector owns at most one connection gesture at a time. All methods are
// synchronous and safe to call in any state: operations that do not apply to
// the current state are no-ops, never errors.
//
// A Connector is constructed explicitly and passed to its interaction
// adapter; one instance serves one editor session.
type Connector struct {
	status   Status
	gesture  Gesture
	validate bool
}

// NewConnector creates an idle connector with validation enabled.
func NewConnector() *Connector {
	return &Connector{status: StatusIdle, validate: true}
}

// SetValidation toggles the self-connection check in Complete. It takes
// effect on the next operation. Missing-target checks are not affected: an
// edge can never be produced without a target endpoint.
func (c *Connector) SetValidation(enabled bool) {
	c.validate = enabled
}

// Status returns the machine's current state.
func (c *Connector) Status() Status {
	return c.status
}

// IsConnecting reports whether a gesture is active.
func (c *Connector) IsConnecting() bool {
	return c.status == StatusActive
}

// Start begins a new gesture from the given source handle. If a gesture is
// already active it is silently discarded — no cancellation is reported for
// it and no edge is ever emitted for it. Returns false, leaving any current
// gesture untouched, when the source node or handle is missing.
func (c *Connector) Start(source diagram.Node, handle string, pos diagram.Point) (Preview, bool) {
	if source.ID == "" || handle == "" {
		return Preview{}, false
	}

	c.gesture = Gesture{
		SourceNode:   source,
		SourceHandle: handle,
		Current:      pos,
	}
	c.status = StatusActive
	return c.preview(), true
}

// Update records the pointer position and the current best snap candidate,
// and returns the refreshed preview. Passing a nil candidate clears any
// previous one. Returns nil when no gesture is active.
func (c *Connector) Update(pos diagram.Point, candidate *diagram.Node, handle string) *Preview {
	if c.status != StatusActive {
		return nil
	}

	c.gesture.Current = pos
	if candidate == nil || handle == "" {
		c.gesture.CandidateNode = nil
		c.gesture.CandidateHandle = ""
	} else {
		n := *candidate
		c.gesture.CandidateNode = &n
		c.gesture.CandidateHandle = handle
	}

	p := c.preview()
	return &p
}

// Complete finishes the active gesture against the given target. The gesture
// is cleared whether or not the result is valid, so the machine can never be
// left stuck in Active. Calling Complete while idle returns an invalid
// result and changes nothing.
func (c *Connector) Complete(target *diagram.Node, handle string) Result {
	if c.status != StatusActive {
		return Result{}
	}

	source := c.gesture.SourceNode
	sourceHandle := c.gesture.SourceHandle
	c.reset()

	// An edge without a target endpoint is never materialized, regardless
	// of the validation toggle.
	if target == nil || handle == "" {
		return Result{}
	}
	if c.validate && target.ID == source.ID {
		return Result{}
	}

	return Result{
		Valid:  true,
		Source: Endpoint{NodeID: source.ID, Handle: sourceHandle},
		Target: Endpoint{NodeID: target.ID, Handle: handle},
	}
}

// Cancel discards the active gesture. Returns true if a gesture was
// discarded, false if the machine was already idle. Idempotent.
func (c *Connector) Cancel() bool {
	if c.status != StatusActive {
		return false
	}
	c.reset()
	return true
}

// Gesture returns a copy of the active gesture, or false when idle.
func (c *Connector) Gesture() (Gesture, bool) {
	if c.status != StatusActive {
		return Gesture{}, false
	}
	return c.gesture, true
}

// Preview returns the current preview, or nil when idle.
func (c *Connector) Preview() *Preview {
	if c.status != StatusActive {
		return nil
	}
	p := c.preview()
	return &p
}

func (c *Connector) preview() Preview {
	p := Preview{Position: c.gesture.Current}
	if c.gesture.CandidateNode == nil || c.gesture.CandidateHandle == "" {
		return p
	}
	p.Candidate = &Endpoint{
		NodeID: c.gesture.CandidateNode.ID,
		Handle: c.gesture.CandidateHandle,
	}
	p.Valid = !c.validate || c.gesture.CandidateNode.ID != c.gesture.SourceNode.ID
	return p
}

func (c *Connector) reset() {
	c.gesture = Gesture{}
	c.status = StatusIdle
}
