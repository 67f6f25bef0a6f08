package distance

import (
	"github.com/arcspline/geokernel/intersect"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
)

// SegmentSegment returns the distance between two segments, along with a
// witness point on each. A real intersection (including mere touching)
// short-circuits to zero. Otherwise the minimum is taken over the four
// endpoint-to-opposite-segment distances.
func SegmentSegment(s0, s1 segment.Segment) (dist float64, p0, p1 point.Point) {
	cfg := intersect.SegmentSegment(s0, s1)
	if cfg.Kind != intersect.SegSegNoIntersection {
		return 0, cfg.P0, cfg.P0
	}

	best, bestP0, bestP1 := -1.0, point.Point{}, point.Point{}
	consider := func(d float64, a, b point.Point) {
		if best < 0 || d < best {
			best, bestP0, bestP1 = d, a, b
		}
	}

	d, c := PointSegment(s0.A, s1)
	consider(d, s0.A, c)
	d, c = PointSegment(s0.B, s1)
	consider(d, s0.B, c)
	d, c = PointSegment(s1.A, s0)
	consider(d, c, s1.A)
	d, c = PointSegment(s1.B, s0)
	consider(d, c, s1.B)

	return best, bestP0, bestP1
}
