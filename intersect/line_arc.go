package intersect

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/line"
)

// LineArc intersects l with the circle supporting a, then keeps only the
// points that lie within a's CCW angular span. A line arc (a.IsLine())
// has no supporting circle and never intersects via this predicate;
// callers with two line-arcs should go through segment/line predicates
// directly.
func LineArc(l line.Line, a arc.Arc) LineCircleConfig {
	if a.IsLine() {
		return LineCircleConfig{Kind: NoIntersection}
	}
	lc := LineCircle(l, circle.New(a.C, a.R))
	return filterLineCircleByArc(lc, a)
}

func filterLineCircleByArc(lc LineCircleConfig, a arc.Arc) LineCircleConfig {
	switch lc.Kind {
	case NoIntersection:
		return lc
	case LineCircleOnePoint:
		if a.Contains(lc.P0) {
			return lc
		}
		return LineCircleConfig{Kind: NoIntersection}
	case LineCircleTwoPoints:
		in0, in1 := a.Contains(lc.P0), a.Contains(lc.P1)
		switch {
		case in0 && in1:
			return lc
		case in0:
			return LineCircleConfig{Kind: LineCircleOnePoint, P0: lc.P0, T0: lc.T0}
		case in1:
			return LineCircleConfig{Kind: LineCircleOnePoint, P0: lc.P1, T0: lc.T1}
		default:
			return LineCircleConfig{Kind: NoIntersection}
		}
	default:
		return LineCircleConfig{Kind: NoIntersection}
	}
}
