package pathedit

// Canvas describes the drawing surface the host renders into, as far as the
// editor needs to know about it: the transform taking canvas-local
// coordinates to device (screen) coordinates.
type Canvas interface {
	ScreenTransform() Affine
}

// Mapper converts device-space pointer coordinates into canvas-local
// coordinates by inverting the canvas's screen transform.
//
// Mapping never fails: with no canvas mounted, or a canvas whose transform
// is singular, device coordinates pass through unchanged.
type Mapper struct {
	Canvas Canvas
}

func (m Mapper) ToCanvas(device Point) Point {
	if m.Canvas == nil {
		return device
	}
	aff := m.Canvas.ScreenTransform()
	if aff.Determinant() == 0 {
		return device
	}
	return device.Transform(aff.Invert())
}
