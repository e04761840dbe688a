package pathedit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// tri returns an open triangle shape with all handles coincident with their
// anchors.
func tri() Shape {
	return NewShape([]Anchor{
		NewAnchor(Pt(0, 0)),
		NewAnchor(Pt(100, 0)),
		NewAnchor(Pt(50, 100)),
	}, false)
}
