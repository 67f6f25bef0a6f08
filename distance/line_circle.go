package distance

import (
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/intersect"
	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
)

// LineCircle returns the distance between line l and circle c, the witness
// point on the line, and the witness point on the circle. Intersecting or
// tangent configurations short-circuit to zero distance at the
// intersection point; otherwise the distance is computed from the foot of
// the perpendicular dropped from c.C onto l.
func LineCircle(l line.Line, c circle.Circle) (dist float64, onLine, onCircle point.Point) {
	cfg := intersect.LineCircle(l, c)
	if cfg.Kind != intersect.NoIntersection {
		return 0, cfg.P0, cfg.P0
	}

	dir, dn := l.Dir.Normalize()
	foot := l.Origin
	if dn != 0 {
		t := c.C.Sub(l.Origin).Dot(dir)
		foot = l.Origin.Add(dir.Scale(t))
	}

	toFoot, fn := foot.Sub(c.C).Normalize()
	if fn == 0 {
		toFoot = point.New(1, 0)
		fn = 0
	}
	onCircle = c.C.Add(toFoot.Scale(c.R))
	return fn - c.R, foot, onCircle
}
