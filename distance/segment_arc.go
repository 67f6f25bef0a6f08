package distance

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/intersect"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
)

// SegmentArc returns the distance between segment s and arc a, along with
// witness points on each. A real intersection short-circuits to zero.
// Otherwise the minimum is taken over the endpoint-to-other-primitive
// distances: each segment endpoint against the arc, and each arc endpoint
// against the segment.
func SegmentArc(s segment.Segment, a arc.Arc) (dist float64, onSegment, onArc point.Point) {
	cfg := intersect.SegmentArc(s, a)
	if cfg.Kind != intersect.NoIntersection {
		return 0, cfg.P0, cfg.P0
	}

	best, bestSeg, bestArc := -1.0, point.Point{}, point.Point{}
	consider := func(d float64, onSeg, onA point.Point) {
		if best < 0 || d < best {
			best, bestSeg, bestArc = d, onSeg, onA
		}
	}

	dA, cA := PointArc(s.A, a)
	consider(dA, s.A, cA)
	dB, cB := PointArc(s.B, a)
	consider(dB, s.B, cB)

	dAA, cAA := PointSegment(a.A, s)
	consider(dAA, cAA, a.A)
	dAB, cAB := PointSegment(a.B, s)
	consider(dAB, cAB, a.B)

	return best, bestSeg, bestArc
}
