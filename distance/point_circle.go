package distance

import (
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
)

// PointCircle returns the distance from p to the nearest point on circle c's
// boundary, the witness point on that boundary, and whether p coincides with
// c's center (in which case every boundary point is equally close and
// closest is an arbitrary choice along the +X axis from the center).
func PointCircle(p point.Point, c circle.Circle) (dist float64, closest point.Point, equidistant bool) {
	dir, n := p.Sub(c.C).Normalize()
	if n == 0 {
		return c.R, c.C.Add(point.New(c.R, 0)), true
	}
	closest = c.C.Add(dir.Scale(c.R))
	d := n - c.R
	if d < 0 {
		d = -d
	}
	return d, closest, false
}
