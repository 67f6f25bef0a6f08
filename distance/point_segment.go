package distance

import (
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
)

// PointSegment returns the distance from p to its nearest point on segment
// s, together with that witness point. A zero-length segment is treated as
// its single endpoint.
func PointSegment(p point.Point, s segment.Segment) (dist float64, closest point.Point) {
	center, dir, extent := s.CenteredForm()
	if extent == 0 {
		closest = s.A
		return p.Sub(closest).Norm(), closest
	}
	t := p.Sub(center).Dot(dir)
	if t > extent {
		t = extent
	} else if t < -extent {
		t = -extent
	}
	closest = center.Add(dir.Scale(t))
	return p.Sub(closest).Norm(), closest
}
