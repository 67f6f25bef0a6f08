package distance

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/intersect"
	"github.com/arcspline/geokernel/point"
)

// ArcArc returns the distance between two arcs, along with a witness point
// on each. A real intersection (including mere touching) short-circuits to
// zero. Otherwise candidates are drawn from the four endpoint-to-other-arc
// distances plus, when the arcs' centers differ, the pair of points
// where each circle crosses the line through both centers, filtered to
// those that actually lie within their arc's span.
func ArcArc(a0, a1 arc.Arc) (dist float64, p0, p1 point.Point) {
	cfg := intersect.ArcArc(a0, a1)
	switch cfg.Kind {
	case intersect.ArcArcNoIntersection:
		// fall through to the candidate search below.
	case intersect.ArcArcOneSubArc, intersect.ArcArcOnePointAndSubArc,
		intersect.ArcArcTwoSubArcs, intersect.ArcArcFullOverlap:
		// Each of these kinds carries an overlapping sub-arc in SubArc0.
		return 0, cfg.SubArc0.A, cfg.SubArc0.A
	default:
		return 0, cfg.P0, cfg.P0
	}

	best, bestP0, bestP1 := -1.0, point.Point{}, point.Point{}
	consider := func(d float64, a, b point.Point) {
		if best < 0 || d < best {
			best, bestP0, bestP1 = d, a, b
		}
	}

	dAA, cAA := PointArc(a0.A, a1)
	consider(dAA, a0.A, cAA)
	dAB, cAB := PointArc(a0.B, a1)
	consider(dAB, a0.B, cAB)
	dBA, cBA := PointArc(a1.A, a0)
	consider(dBA, cBA, a1.A)
	dBB, cBB := PointArc(a1.B, a0)
	consider(dBB, cBB, a1.B)

	if !a0.IsLine() && !a1.IsLine() {
		dir, centerDist := a1.C.Sub(a0.C).Normalize()
		if centerDist > 0 {
			cand0 := a0.C.Add(dir.Scale(a0.R))
			cand1 := a1.C.Sub(dir.Scale(a1.R))
			if a0.Contains(cand0) && a1.Contains(cand1) {
				consider(cand0.Sub(cand1).Norm(), cand0, cand1)
			}
		}
	}

	return best, bestP0, bestP1
}
