package distance

import (
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/intersect"
	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
)

// SegmentCircle returns the distance between segment s and circle c, along
// with witness points on each. A real intersection short-circuits to zero.
// Otherwise the minimum is taken over the two endpoint-to-circle distances
// and, when the perpendicular foot from c.C onto the segment's supporting
// line falls within the segment's extent, the line-to-circle critical
// distance as well.
func SegmentCircle(s segment.Segment, c circle.Circle) (dist float64, onSegment, onCircle point.Point) {
	cfg := intersect.SegmentCircle(s, c)
	if cfg.Kind != intersect.NoIntersection {
		return 0, cfg.P0, cfg.P0
	}

	best, bestSeg, bestCirc := -1.0, point.Point{}, point.Point{}
	consider := func(d float64, onSeg, onCirc point.Point) {
		if best < 0 || d < best {
			best, bestSeg, bestCirc = d, onSeg, onCirc
		}
	}

	d0, p0, eq0 := PointCircle(s.A, c)
	_ = eq0
	consider(d0, s.A, p0)
	d1, p1, eq1 := PointCircle(s.B, c)
	_ = eq1
	consider(d1, s.B, p1)

	center, dir, extent := s.CenteredForm()
	if extent > 0 {
		t := c.C.Sub(center).Dot(dir)
		if t >= -extent && t <= extent {
			foot := center.Add(dir.Scale(t))
			dLine, onL, onC := LineCircle(line.New(center, dir), c)
			_ = onL
			consider(dLine, foot, onC)
		}
	}

	return best, bestSeg, bestCirc
}
