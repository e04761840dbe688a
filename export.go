package pathedit

import (
	"math"
	"strconv"
	"strings"
)

// Normalize maps a polyline into a coordinate space roughly spanning
// [-1, 1], independent of where on the canvas the shape was drawn: points
// are recentered on the bounding box midpoint and scaled by 2 over the
// larger box dimension. A single point (zero-size box) maps to the origin.
// An empty polyline normalizes to nothing.
func Normalize(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	bounds := boundsOf(pts)
	center := bounds.Center()
	divisor := max(bounds.Width(), bounds.Height())
	if divisor == 0 {
		divisor = 1
	}
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = Point(pt.Sub(center).Mul(2 / divisor))
	}
	return out
}

// Encode serializes a polyline as alternating x and y coordinates joined by
// single spaces, each rounded to four fractional digits. An empty polyline
// encodes to the empty string.
func Encode(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatCoord(pt.X))
		sb.WriteByte(' ')
		sb.WriteString(formatCoord(pt.Y))
	}
	return sb.String()
}

func formatCoord(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Export runs the full export pipeline — compile, flatten, normalize,
// encode — and returns the resulting coordinate string. It is a pure
// function of the shape: identical shapes export identically.
func (s Shape) Export(tolerance float64) string {
	return Encode(Normalize(s.Flatten(tolerance)))
}
