package pathedit

import (
	"math"
	"testing"
)

func TestFlattenLine(t *testing.T) {
	// handles coincident with the anchors degenerate the cubic to its
	// chord, which is flat immediately
	s := NewShape([]Anchor{NewAnchor(Pt(0, 0)), NewAnchor(Pt(100, 0))}, false)
	diff(t, []Point{Pt(0, 0), Pt(100, 0)}, s.Flatten(0.5))
}

func TestFlattenTriangle(t *testing.T) {
	s := tri().SetClosed(true)
	want := []Point{Pt(0, 0), Pt(100, 0), Pt(50, 100), Pt(0, 0)}
	diff(t, want, s.Flatten(0.5))
}

func TestFlattenStartsAtFirstAnchor(t *testing.T) {
	shapes := []Shape{
		NewShape([]Anchor{NewAnchor(Pt(10, 10))}, false),
		tri(),
		tri().SetClosed(true),
		tri().SetHandle(0, HandleOutKind, Pt(40, -80), true),
	}
	for _, s := range shapes {
		pts := s.Flatten(0.5)
		if len(pts) == 0 {
			t.Fatalf("empty polyline for %d-anchor shape", s.Len())
		}
		a, _ := s.At(0)
		diff(t, a.Pos, pts[0])
	}

	var empty Shape
	diff(t, 0, len(empty.Flatten(0.5)))
}

// pointSegmentDistance returns the distance from pt to the segment (a, b).
func pointSegmentDistance(pt, a, b Point) float64 {
	d := b.Sub(a)
	h2 := d.Hypot2()
	if h2 == 0 {
		return pt.Distance(a)
	}
	u := pt.Sub(a).Dot(d) / h2
	u = max(0, min(1, u))
	return pt.Distance(a.Translate(d.Mul(u)))
}

func polylineDistance(pt Point, pts []Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		best = min(best, pointSegmentDistance(pt, pts[i], pts[i+1]))
	}
	return best
}

func TestFlattenWithinTolerance(t *testing.T) {
	segs := []CubicBez{
		{Pt(0, 0), Pt(50, 0), Pt(100, 50), Pt(100, 100)},
		{Pt(100, 100), Pt(100, 200), Pt(-100, 200), Pt(0, 0)},
		{Pt(0, 0), Pt(300, 0), Pt(-200, 10), Pt(10, 10)},
	}
	for _, tolerance := range []float64{0.5, 0.1, 0.01} {
		for _, c := range segs {
			pts := Flatten([]CubicBez{c}, tolerance)
			diff(t, c.P0, pts[0])
			diff(t, c.P3, pts[len(pts)-1])
			const n = 500
			for i := 0; i <= n; i++ {
				at := c.Eval(float64(i) / n)
				if d := polylineDistance(at, pts); d > tolerance*1.001 {
					t.Fatalf("point %s at t=%g is %g away from the polyline, want at most %g",
						at, float64(i)/n, d, tolerance)
				}
			}
		}
	}
}

func TestFlattenSharedVertices(t *testing.T) {
	// consecutive segments must not duplicate their junction vertex
	s := tri().SetHandle(1, HandleOutKind, Pt(120, 40), true)
	pts := s.Flatten(0.5)
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Fatalf("duplicate vertex %s at %d", pts[i], i)
		}
	}
}

func TestFlattenDegenerate(t *testing.T) {
	nan := math.NaN()
	c := CubicBez{Pt(0, 0), Pt(nan, nan), Pt(nan, nan), Pt(1, 1)}
	// must terminate and fall back to the endpoint
	diff(t, []Point{Pt(0, 0), Pt(1, 1)}, Flatten([]CubicBez{c}, 0.5))

	// a zero-length segment is flat by definition
	z := CubicBez{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)}
	diff(t, []Point{Pt(5, 5), Pt(5, 5)}, Flatten([]CubicBez{z}, 0.5))
}

func TestFlattenSteps(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(50, 0), Pt(100, 50), Pt(100, 100)}
	pts := FlattenSteps([]CubicBez{c}, 4)
	diff(t, 5, len(pts))
	diff(t, c.P0, pts[0])
	diff(t, c.Eval(0.5), pts[2])
	diff(t, c.P3, pts[4])

	diff(t, 0, len(FlattenSteps(nil, 4)))
	diff(t, 0, len(FlattenSteps([]CubicBez{c}, 0)))
}
