package line

import (
	"fmt"

	"github.com/arcspline/geokernel/point"
)

// Line is the set of points Origin + t*Dir for t in R. Dir need not be
// unit length.
type Line struct {
	Origin, Dir point.Point
}

// New returns the line through origin in direction dir.
func New(origin, dir point.Point) Line {
	return Line{Origin: origin, Dir: dir}
}

func (l Line) String() string {
	return fmt.Sprintf("[%s, %s]", l.Origin, l.Dir)
}

// UnitDir returns a copy of l with Dir normalized to unit length. A zero
// direction normalizes to the zero vector, matching point.Normalize.
func (l Line) UnitDir() Line {
	dir, _ := l.Dir.Normalize()
	return Line{Origin: l.Origin, Dir: dir}
}
