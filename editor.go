package pathedit

// DefaultCloseRadius is the radius in canvas units within which a press near
// the first anchor closes the shape instead of appending a new anchor.
const DefaultCloseRadius = 6

type stateKind int

const (
	stateIdle stateKind = iota
	statePlacingAnchor
	stateDraggingHandle
	stateMovingAnchor
)

// interactionState is the editor's single active interaction. At most one
// drag is in flight at a time; index, handle, symmetric and lastPos are only
// meaningful for the kinds that set them.
type interactionState struct {
	kind      stateKind
	index     int
	handle    HandleKind
	symmetric bool
	lastPos   Point
}

// Editor is the interactive editing core for a single shape. It consumes
// pointer and keyboard events in canvas-local coordinates (see [Mapper]),
// mutates its shape accordingly, and synchronously recomputes the export
// string after every committed mutation.
//
// An editor is not safe for concurrent use; it is meant to be driven from a
// single event loop, with events applied strictly in arrival order.
type Editor struct {
	// CloseRadius is the press-to-close proximity threshold around the
	// first anchor. Zero or negative means DefaultCloseRadius.
	CloseRadius float64
	// Tolerance is the flatness tolerance used when exporting. Zero or
	// negative means DefaultTolerance.
	Tolerance float64

	// OnExport, if set, is called with the freshly computed export string
	// immediately after every shape mutation.
	OnExport func(export string)
	// OnCapture, if set, is called with true when a drag begins and false
	// when it ends, on every exit path: release, Escape, Clear. Hosts use
	// it to register and deregister window-level move/release listeners so
	// the drag keeps following the pointer outside the canvas. Calls are
	// always balanced.
	OnCapture func(active bool)

	shape  Shape
	state  interactionState
	export string

	// scale baseline, see transform.go
	baseline         []Anchor
	baselineCentroid Point
}

func NewEditor() *Editor {
	return &Editor{
		CloseRadius: DefaultCloseRadius,
		Tolerance:   DefaultTolerance,
	}
}

// Shape returns the current shape snapshot.
func (ed *Editor) Shape() Shape {
	return ed.shape
}

// Export returns the export string for the current shape.
func (ed *Editor) Export() string {
	return ed.export
}

// Dragging reports whether a drag is in flight.
func (ed *Editor) Dragging() bool {
	return ed.state.kind != stateIdle
}

func (ed *Editor) closeRadius() float64 {
	if ed.CloseRadius > 0 {
		return ed.CloseRadius
	}
	return DefaultCloseRadius
}

func (ed *Editor) tolerance() float64 {
	if ed.Tolerance > 0 {
		return ed.Tolerance
	}
	return DefaultTolerance
}

// apply commits a mutated shape and republishes the export string. Any
// pending scale baseline is dropped, as it no longer describes the shape.
func (ed *Editor) apply(s Shape) {
	ed.shape = s
	ed.baseline = nil
	ed.republish()
}

func (ed *Editor) republish() {
	ed.export = ed.shape.Export(ed.tolerance())
	if ed.OnExport != nil {
		ed.OnExport(ed.export)
	}
}

func (ed *Editor) beginDrag(st interactionState) {
	ed.state = st
	if ed.OnCapture != nil {
		ed.OnCapture(true)
	}
}

func (ed *Editor) endDrag() {
	if ed.state.kind == stateIdle {
		return
	}
	ed.state = interactionState{}
	if ed.OnCapture != nil {
		ed.OnCapture(false)
	}
}

// NearFirst reports whether pt is within the closing radius of the first
// anchor and a press there would close the shape. Hosts use it for the
// "about to close" hover indicator. Only the first anchor's position is
// considered, not its handles.
func (ed *Editor) NearFirst(pt Point) bool {
	if ed.shape.closed || ed.shape.Len() < 3 {
		return false
	}
	first := ed.shape.anchors[0].Pos
	r := ed.closeRadius()
	return pt.DistanceSquared(first) <= r*r
}

// PointerDown handles a primary-button press on empty canvas. Within the
// closing radius of the first anchor it closes the shape; otherwise it
// appends a new anchor there and begins placing it, so that a following
// drag shapes its handles. Presses are ignored while a drag is in flight
// or once the shape is closed.
func (ed *Editor) PointerDown(pt Point) {
	if ed.state.kind != stateIdle || ed.shape.closed {
		return
	}
	if ed.NearFirst(pt) {
		ed.apply(ed.shape.SetClosed(true))
		return
	}
	s := ed.shape.Append(pt)
	ed.apply(s)
	ed.beginDrag(interactionState{kind: statePlacingAnchor, index: s.Len() - 1})
}

// AnchorDown handles a primary-button press directly on anchor i. It must be
// dispatched instead of, not in addition to, [Editor.PointerDown] for the
// same press. A press on the first anchor of an unclosed shape with at least
// three anchors closes the shape; any other anchor press begins moving that
// anchor.
func (ed *Editor) AnchorDown(i int, pt Point) {
	if ed.state.kind != stateIdle {
		return
	}
	if i == 0 && !ed.shape.closed && ed.shape.Len() >= 3 {
		ed.apply(ed.shape.SetClosed(true))
		return
	}
	if i < 0 || i >= ed.shape.Len() {
		return
	}
	ed.beginDrag(interactionState{kind: stateMovingAnchor, index: i, lastPos: pt})
}

// HandleDown handles a primary-button press on handle which of anchor i and
// begins dragging it. symmetric is captured for the whole drag; hosts derive
// it from a modifier key held at press time. Like [Editor.AnchorDown], it
// pre-empts [Editor.PointerDown].
func (ed *Editor) HandleDown(i int, which HandleKind, symmetric bool) {
	if ed.state.kind != stateIdle {
		return
	}
	if i < 0 || i >= ed.shape.Len() {
		return
	}
	ed.beginDrag(interactionState{
		kind:      stateDraggingHandle,
		index:     i,
		handle:    which,
		symmetric: symmetric,
	})
}

// PointerMove handles pointer motion during a drag. Outside of a drag it is
// a no-op. If the dragged anchor has been removed mid-drag by an undo, the
// underlying mutation silently no-ops.
func (ed *Editor) PointerMove(pt Point) {
	switch ed.state.kind {
	case statePlacingAnchor:
		// Dragging right after placing an anchor pulls its out-handle,
		// mirroring the in-handle to keep the new anchor smooth.
		ed.apply(ed.shape.SetHandle(ed.state.index, HandleOutKind, pt, true))
	case stateDraggingHandle:
		ed.apply(ed.shape.SetHandle(ed.state.index, ed.state.handle, pt, ed.state.symmetric))
	case stateMovingAnchor:
		delta := pt.Sub(ed.state.lastPos)
		ed.state.lastPos = pt
		ed.apply(ed.shape.TranslateAnchor(ed.state.index, delta))
	}
}

// PointerUp handles the primary-button release, ending any active drag.
func (ed *Editor) PointerUp() {
	ed.endDrag()
}

// KeyEnter closes the shape if it has at least three anchors. An active
// drag is unaffected.
func (ed *Editor) KeyEnter() {
	if ed.shape.Len() >= 3 && !ed.shape.closed {
		ed.apply(ed.shape.SetClosed(true))
	}
}

// KeyEscape cancels the active drag, keeping positions already applied
// during it, and closes the shape if it has at least three anchors.
func (ed *Editor) KeyEscape() {
	if ed.shape.Len() >= 3 && !ed.shape.closed {
		ed.apply(ed.shape.SetClosed(true))
	}
	ed.endDrag()
}

// KeyUndo removes the most recently placed anchor and reopens the shape.
// A drag targeting the removed anchor stays active but mutates nothing
// from then on.
func (ed *Editor) KeyUndo() {
	ed.apply(ed.shape.PopLast().SetClosed(false))
}

// RequestClose closes the shape if it has at least three anchors. It is the
// control-surface twin of [Editor.KeyEnter].
func (ed *Editor) RequestClose() {
	ed.KeyEnter()
}

// Clear resets the editor to an empty, open shape, cancelling any active
// drag.
func (ed *Editor) Clear() {
	ed.endDrag()
	ed.apply(Shape{})
}
