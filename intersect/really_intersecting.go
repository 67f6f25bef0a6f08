package intersect

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
)

// IsReallyIntersectingLineLine reports whether l0 and l1 cross at a proper
// point, excluding parallel configurations.
func IsReallyIntersectingLineLine(l0, l1 line.Line) (bool, point.Point) {
	cfg := LineLine(l0, l1)
	if cfg.Kind == OnePoint {
		return true, cfg.P
	}
	return false, point.Zero
}

// IsReallyIntersectingCircleCircle reports whether c0 and c1 cross at one
// or two proper points, excluding tangency and identity.
func IsReallyIntersectingCircleCircle(c0, c1 circle.Circle) (bool, point.Point) {
	cfg := CircleCircle(c0, c1)
	if cfg.Kind == CircleCircleTwoPoints {
		return true, cfg.P0
	}
	return false, point.Zero
}

// IsReallyIntersectingSegmentSegment reports whether s0 and s1 cross at a
// proper point or overlap along a segment, excluding mere endpoint
// touches.
func IsReallyIntersectingSegmentSegment(s0, s1 segment.Segment) (bool, point.Point) {
	cfg := SegmentSegment(s0, s1)
	switch cfg.Kind {
	case SegSegOnePoint, SegSegTwoPoints:
		return true, cfg.P0
	default:
		return false, point.Zero
	}
}

// IsReallyIntersectingArcArc reports whether a0 and a1 cross properly or
// overlap along a sub-arc, excluding mere endpoint touches. This is the
// predicate the self-intersection engine uses to decide whether a
// candidate pair is a genuine crossing.
func IsReallyIntersectingArcArc(a0, a1 arc.Arc) (bool, point.Point) {
	cfg := ArcArc(a0, a1)
	switch cfg.Kind {
	case ArcArcOnePoint, ArcArcTwoPoints:
		return true, cfg.P0
	case ArcArcOneSubArc:
		return true, cfg.SubArc0.A
	case ArcArcOnePointAndSubArc:
		return true, cfg.P0
	case ArcArcTwoSubArcs:
		return true, cfg.SubArc0.A
	case ArcArcFullOverlap:
		return true, a0.A
	default:
		return false, point.Zero
	}
}
