package pathedit

// DefaultTolerance is the flatness tolerance used by [Editor], in canvas
// units: the maximum perpendicular deviation between a curve and its
// polyline approximation.
const DefaultTolerance = 0.5

// maxFlattenDepth bounds the subdivision recursion. Degenerate control point
// configurations (NaN coordinates, in particular) can fail the flatness test
// at every level; past this depth the endpoint is emitted as-is.
const maxFlattenDepth = 24

// Flatten approximates a sequence of contiguous cubic segments by a
// polyline, using adaptive subdivision: a segment whose control points both
// lie within tolerance of its chord is emitted as a single line, anything
// else is halved with de Casteljau and the halves are flattened in order.
//
// The first vertex is the start of the first segment; after that, exactly
// one vertex is emitted per flat (sub)segment, so consecutive segments share
// no duplicate vertices.
func Flatten(segs []CubicBez, tolerance float64) []Point {
	if len(segs) == 0 {
		return nil
	}
	out := make([]Point, 0, 2*len(segs))
	out = append(out, segs[0].P0)
	tolerance2 := tolerance * tolerance
	for _, seg := range segs {
		out = flattenCubic(out, seg, tolerance2, 0)
	}
	return out
}

func flattenCubic(dst []Point, c CubicBez, tolerance2 float64, depth int) []Point {
	if depth >= maxFlattenDepth || c.IsNaN() || c.flatEnough(tolerance2) {
		return append(dst, c.P3)
	}
	left, right := c.Subdivide()
	dst = flattenCubic(dst, left, tolerance2, depth+1)
	return flattenCubic(dst, right, tolerance2, depth+1)
}

// Flatten approximates the shape's outline by a polyline. A shape with a
// single anchor flattens to that anchor's position; an empty shape flattens
// to nothing. For at least one anchor the first vertex is always the first
// anchor's position.
func (s Shape) Flatten(tolerance float64) []Point {
	switch len(s.anchors) {
	case 0:
		return nil
	case 1:
		return []Point{s.anchors[0].Pos}
	default:
		return Flatten(s.Segments(), tolerance)
	}
}

// FlattenSteps approximates the segments by sampling each one at n uniform
// parameter steps. This trades fidelity for a predictable vertex count: flat
// stretches get as many vertices as tight curves, and the deviation from the
// true curve is not bounded by any tolerance. [Flatten] is the canonical
// algorithm; use this only when a fixed vertex budget per segment matters
// more than accuracy.
func FlattenSteps(segs []CubicBez, n int) []Point {
	if len(segs) == 0 || n < 1 {
		return nil
	}
	out := make([]Point, 0, len(segs)*n+1)
	out = append(out, segs[0].P0)
	for _, seg := range segs {
		for i := 1; i <= n; i++ {
			out = append(out, seg.Eval(float64(i)/float64(n)))
		}
	}
	return out
}
