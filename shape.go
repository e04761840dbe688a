package pathedit

import "slices"

// HandleKind selects one of an anchor's two control handles.
type HandleKind int

const (
	// The handle shaping the curve arriving at the anchor.
	HandleInKind HandleKind = iota + 1
	// The handle shaping the curve leaving the anchor.
	HandleOutKind
)

func (k HandleKind) String() string {
	switch k {
	case HandleInKind:
		return "HandleIn"
	case HandleOutKind:
		return "HandleOut"
	default:
		return "InvalidHandleKind"
	}
}

// opposite returns the other handle of the same anchor.
func (k HandleKind) opposite() HandleKind {
	if k == HandleInKind {
		return HandleOutKind
	}
	return HandleInKind
}

// Anchor is a user-placed path vertex together with its two control handles.
// Handles are absolute points, not offsets from the anchor.
type Anchor struct {
	Pos       Point
	HandleIn  Point
	HandleOut Point
}

// NewAnchor returns an anchor at pt with both handles coincident with it,
// which is the state of a freshly placed anchor.
func NewAnchor(pt Point) Anchor {
	return Anchor{Pos: pt, HandleIn: pt, HandleOut: pt}
}

func (a Anchor) handle(k HandleKind) Point {
	if k == HandleInKind {
		return a.HandleIn
	}
	return a.HandleOut
}

func (a Anchor) withHandle(k HandleKind, pt Point) Anchor {
	if k == HandleInKind {
		a.HandleIn = pt
	} else {
		a.HandleOut = pt
	}
	return a
}

// Translate moves the anchor and both handles by delta.
func (a Anchor) Translate(delta Vec2) Anchor {
	return Anchor{
		Pos:       a.Pos.Translate(delta),
		HandleIn:  a.HandleIn.Translate(delta),
		HandleOut: a.HandleOut.Translate(delta),
	}
}

func (a Anchor) Transform(aff Affine) Anchor {
	return Anchor{
		Pos:       a.Pos.Transform(aff),
		HandleIn:  a.HandleIn.Transform(aff),
		HandleOut: a.HandleOut.Transform(aff),
	}
}

// Shape is an ordered sequence of anchors, optionally closed into a loop.
//
// Shape is a value type: every mutating method returns a new shape with a
// freshly allocated anchor sequence, leaving the receiver untouched. Holding
// on to an old shape therefore always observes a consistent snapshot.
//
// The zero value is the empty, open shape.
type Shape struct {
	anchors []Anchor
	closed  bool
}

// NewShape returns a shape made of the given anchors. The anchors are copied.
func NewShape(anchors []Anchor, closed bool) Shape {
	return Shape{
		anchors: slices.Clone(anchors),
		closed:  closed && len(anchors) >= 3,
	}
}

// Len returns the number of anchors.
func (s Shape) Len() int {
	return len(s.anchors)
}

// Closed reports whether the shape has been closed into a loop.
func (s Shape) Closed() bool {
	return s.closed
}

// At returns the anchor at index i, or false if i is out of range.
func (s Shape) At(i int) (Anchor, bool) {
	if i < 0 || i >= len(s.anchors) {
		return Anchor{}, false
	}
	return s.anchors[i], true
}

// Anchors returns a copy of the anchor sequence.
func (s Shape) Anchors() []Anchor {
	return slices.Clone(s.anchors)
}

// Append adds a new anchor at pt, with both handles coincident with it.
// Once the shape is closed, no new anchors may be appended and the shape is
// returned unchanged.
func (s Shape) Append(pt Point) Shape {
	if s.closed {
		return s
	}
	anchors := make([]Anchor, len(s.anchors)+1)
	copy(anchors, s.anchors)
	anchors[len(anchors)-1] = NewAnchor(pt)
	return Shape{anchors: anchors, closed: s.closed}
}

// SetHandle moves handle which of anchor i to pt. With symmetric set, the
// opposite handle is relocated to the reflection of pt through the anchor,
// preserving tangent continuity. An out-of-range index returns the shape
// unchanged.
func (s Shape) SetHandle(i int, which HandleKind, pt Point, symmetric bool) Shape {
	if i < 0 || i >= len(s.anchors) {
		return s
	}
	anchors := slices.Clone(s.anchors)
	a := anchors[i].withHandle(which, pt)
	if symmetric {
		a = a.withHandle(which.opposite(), a.Pos.Reflect(pt))
	}
	anchors[i] = a
	return Shape{anchors: anchors, closed: s.closed}
}

// TranslateAnchor moves anchor i and both of its handles by delta. An
// out-of-range index returns the shape unchanged.
func (s Shape) TranslateAnchor(i int, delta Vec2) Shape {
	if i < 0 || i >= len(s.anchors) {
		return s
	}
	anchors := slices.Clone(s.anchors)
	anchors[i] = anchors[i].Translate(delta)
	return Shape{anchors: anchors, closed: s.closed}
}

// PopLast removes the most recently appended anchor. Popping an empty shape
// returns it unchanged. The closed flag is not touched; reopening is the
// caller's decision.
func (s Shape) PopLast() Shape {
	if len(s.anchors) == 0 {
		return s
	}
	return Shape{
		anchors: slices.Clone(s.anchors[:len(s.anchors)-1]),
		closed:  s.closed,
	}
}

// SetClosed closes or reopens the shape. Closing requires at least three
// anchors; a premature close returns the shape unchanged. Reopening is
// always allowed.
func (s Shape) SetClosed(closed bool) Shape {
	if closed && len(s.anchors) < 3 {
		return s
	}
	return Shape{anchors: slices.Clone(s.anchors), closed: closed}
}
