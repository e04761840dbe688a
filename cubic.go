package pathedit

// CubicBez is a single cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// flatEnough reports whether both control points lie within the squared
// tolerance of the chord from P0 to P3, measured perpendicularly.
func (c CubicBez) flatEnough(tolerance2 float64) bool {
	return chordDistanceSquared(c.P1, c.P0, c.P3) <= tolerance2 &&
		chordDistanceSquared(c.P2, c.P0, c.P3) <= tolerance2
}

// chordDistanceSquared returns the squared perpendicular distance from pt to
// the line through p0 and p3. For a degenerate chord it falls back to the
// distance to p0.
func chordDistanceSquared(pt, p0, p3 Point) float64 {
	d := p3.Sub(p0)
	h2 := d.Hypot2()
	if h2 == 0 {
		return pt.DistanceSquared(p0)
	}
	cross := d.Cross(pt.Sub(p0))
	return cross * cross / h2
}
