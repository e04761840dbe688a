package pathedit

// anchorsBounds returns the enclosing rectangle of the anchors' positions
// and both of their handles. Handles may extend outside the anchor-only box
// and are deliberately included.
func anchorsBounds(anchors []Anchor) (Rect, bool) {
	if len(anchors) == 0 {
		return Rect{}, false
	}
	r := NewRectFromPoints(anchors[0].Pos, anchors[0].Pos)
	for _, a := range anchors {
		r = r.UnionPoint(a.Pos).UnionPoint(a.HandleIn).UnionPoint(a.HandleOut)
	}
	return r, true
}

// SetScale scales the shape about its centroid by multiplier. The first call
// of an editing session captures the current anchors as an immutable
// baseline, along with the centroid of their bounding box; every call maps
// that same baseline, so adjusting the multiplier repeatedly is
// multiplicative against the original geometry rather than compounding
// against an already-scaled shape. Any other mutation drops the baseline,
// and the next SetScale captures a fresh one.
func (ed *Editor) SetScale(multiplier float64) {
	if ed.shape.Len() == 0 {
		return
	}
	if ed.baseline == nil {
		ed.baseline = ed.shape.Anchors()
		bounds, _ := anchorsBounds(ed.baseline)
		ed.baselineCentroid = bounds.Center()
	}
	aff := ScaleAbout(ed.baselineCentroid, multiplier)
	anchors := make([]Anchor, len(ed.baseline))
	for i, a := range ed.baseline {
		anchors[i] = a.Transform(aff)
	}
	// Bypass apply: the baseline must survive consecutive SetScale calls.
	ed.shape = Shape{anchors: anchors, closed: ed.shape.closed}
	ed.republish()
}

// ResetScaleBaseline drops the captured scale baseline, ending the scaling
// session. The next [Editor.SetScale] captures the shape as it is then.
func (ed *Editor) ResetScaleBaseline() {
	ed.baseline = nil
}

// Maximize uniformly scales the shape to fit a target-sized square: the
// bounding box over all anchors and handles is translated so its origin
// lands at (0, 0) and scaled by min(target/width, target/height). A shape
// whose box has zero width or height is left unchanged.
func (ed *Editor) Maximize(target float64) {
	bounds, ok := anchorsBounds(ed.shape.anchors)
	if !ok {
		return
	}
	w, h := bounds.Width(), bounds.Height()
	if w == 0 || h == 0 {
		return
	}
	scale := min(target/w, target/h)
	aff := Translate(Vec2(bounds.Origin()).Negate()).ThenScale(scale, scale)
	anchors := make([]Anchor, ed.shape.Len())
	for i, a := range ed.shape.anchors {
		anchors[i] = a.Transform(aff)
	}
	ed.apply(Shape{anchors: anchors, closed: ed.shape.closed})
}
