package intersect

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
	"github.com/arcspline/geokernel/segment"
)

// SegmentArcConfig is the result of SegmentArc. Touching0/Touching1 report
// whether P0/P1 coincide with an endpoint shared between the segment and
// the arc, a configuration downstream algorithms may want to treat as a
// mere touch rather than a proper crossing.
type SegmentArcConfig struct {
	Kind      LineCircleKind
	P0, P1    point.Point
	Touching0 bool
	Touching1 bool
}

// SegmentArc composes SegmentCircle (against a's supporting circle) with
// arc containment, then flags any surviving point that coincides with a
// shared endpoint of s and a. A line arc has no supporting circle; such
// arcs are not handled here.
func SegmentArc(s segment.Segment, a arc.Arc) SegmentArcConfig {
	if a.IsLine() {
		return SegmentArcConfig{Kind: NoIntersection}
	}
	sc := SegmentCircle(s, circle.New(a.C, a.R))
	filtered := filterLineCircleByArc(sc, a)

	out := SegmentArcConfig{Kind: filtered.Kind, P0: filtered.P0, P1: filtered.P1}
	switch filtered.Kind {
	case LineCircleOnePoint:
		out.Touching0 = isSharedEndpoint(s, a, filtered.P0)
	case LineCircleTwoPoints:
		out.Touching0 = isSharedEndpoint(s, a, filtered.P0)
		out.Touching1 = isSharedEndpoint(s, a, filtered.P1)
	}
	return out
}

func isSharedEndpoint(s segment.Segment, a arc.Arc, p point.Point) bool {
	onSegment := p.CloseEnough(s.A, scalar.GeometricEpsilon) || p.CloseEnough(s.B, scalar.GeometricEpsilon)
	onArc := p.CloseEnough(a.A, scalar.GeometricEpsilon) || p.CloseEnough(a.B, scalar.GeometricEpsilon)
	return onSegment && onArc
}
