package pathedit

import "fmt"

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting the path.
	MoveToKind PathElementKind = iota + 1
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a single drawing command of a compiled path, for hosts that
// render with command-based graphics APIs.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Segments compiles the shape into its cubic Bézier segments, one per
// consecutive anchor pair. The segment between anchors a and b runs from
// a.Pos over a.HandleOut and b.HandleIn to b.Pos. A closed shape gains a
// wrap segment from the last anchor back to the first. Fewer than two
// anchors compile to nothing.
func (s Shape) Segments() []CubicBez {
	n := len(s.anchors)
	if n < 2 {
		return nil
	}
	count := n - 1
	if s.closed {
		count = n
	}
	segs := make([]CubicBez, count)
	for i := 0; i < count; i++ {
		a := s.anchors[i]
		b := s.anchors[(i+1)%n]
		segs[i] = CubicBez{
			P0: a.Pos,
			P1: a.HandleOut,
			P2: b.HandleIn,
			P3: b.Pos,
		}
	}
	return segs
}

// PathElements returns the shape as a sequence of drawing commands: a MoveTo
// to the first anchor, a CubicTo per segment, and a trailing ClosePath for
// closed shapes. An empty shape yields nothing.
func (s Shape) PathElements() []PathElement {
	if len(s.anchors) == 0 {
		return nil
	}
	segs := s.Segments()
	els := make([]PathElement, 0, len(segs)+2)
	els = append(els, MoveTo(s.anchors[0].Pos))
	for _, seg := range segs {
		els = append(els, CubicTo(seg.P1, seg.P2, seg.P3))
	}
	if s.closed {
		els = append(els, ClosePath())
	}
	return els
}
