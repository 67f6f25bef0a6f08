package circle

import (
	"fmt"

	"github.com/arcspline/geokernel/point"
)

// Circle is the set of points at distance R from center C. R is expected to
// be non-negative and finite.
type Circle struct {
	C point.Point
	R float64
}

// New returns the circle centered at c with radius r.
func New(c point.Point, r float64) Circle {
	return Circle{C: c, R: r}
}

func (c Circle) String() string {
	return fmt.Sprintf("[%s, %.20f]", c.C, c.R)
}
