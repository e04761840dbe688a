// Package pathedit implements the editing core of a 2D bezier path
// authoring tool: a user places anchor points with control handles on a
// canvas, optionally closes the path into a loop, and the resulting shape
// is exported as a normalized coordinate sequence for consumption by a
// downstream layout tool.
//
// The package is deliberately free of any rendering or windowing code. It
// models the data (anchors, shapes, compiled segments, flattened polylines)
// and the interaction semantics; a host shell owns the actual widgets,
// forwards pointer and keyboard events, and draws from the data the editor
// exposes.
//
// # Shapes and snapshots
//
// [Shape] is an ordered sequence of [Anchor] values plus a closed flag.
// Every mutating method returns a new shape and leaves the receiver alone,
// so any shape value a caller holds is a stable snapshot. [Editor] owns the
// current shape and replaces it wholesale on each mutation.
//
// # Interaction
//
// [Editor] is a small state machine driven by pointer and keyboard events
// in canvas-local coordinates; [Mapper] converts device coordinates for
// hosts whose canvases carry a screen transform. Pressing empty canvas
// appends an anchor and dragging on shapes its handles symmetrically;
// pressing an anchor moves it; pressing a handle drags it, optionally
// breaking symmetry. Pressing on or near the first anchor closes the shape
// once it has three anchors. Enter closes, Escape cancels a drag (closing
// too if possible), and undo removes the last anchor and reopens the path.
//
// During a drag the editor asks the host, via [Editor.OnCapture], to route
// pointer events to it regardless of where the pointer is; the request is
// revoked on every way out of the drag.
//
// # Flattening and export
//
// [Shape.Segments] compiles a shape into cubic Bézier segments, and
// [Flatten] approximates them by a polyline via adaptive de Casteljau
// subdivision, with the perpendicular distance from the control points to
// the chord as the flatness metric (see [Flattening quadratic Béziers] for
// background on the family of algorithms). [Normalize] recenters the
// polyline on its bounding box and scales it into roughly [-1, 1], and
// [Encode] serializes it as space-separated alternating x, y coordinates.
// The editor republishes the encoded string after every mutation through
// [Editor.OnExport].
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
package pathedit
