package segment

import (
	"fmt"

	"github.com/arcspline/geokernel/point"
)

// Segment is the line segment from A to B.
type Segment struct {
	A, B point.Point
}

// New returns the segment from a to b.
func New(a, b point.Point) Segment {
	return Segment{A: a, B: b}
}

func (s Segment) String() string {
	return fmt.Sprintf("[%s, %s]", s.A, s.B)
}

// CenteredForm returns the segment's center, unit direction from center
// toward B, and half-length. A zero-length segment returns a zero
// direction and zero extent.
func (s Segment) CenteredForm() (center, dir point.Point, extent float64) {
	center = s.A.Add(s.B).Scale(0.5)
	d := s.B.Sub(s.A)
	unit, norm := d.Normalize()
	return center, unit, norm * 0.5
}
