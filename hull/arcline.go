package hull

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/arcline"
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/predicates"
	"github.com/arcspline/geokernel/tangent"
)

// Arcline computes the convex hull of an arc-and-segment polygon. It
// collects candidate vertices (every arc's endpoints, plus the cardinal
// extrema of outward-bulging arcs that lie within the arc's span), runs
// Points over that candidate set to fix the hull's vertex order, then
// realizes each hull edge as the original arc when both its endpoints
// survive as adjacent hull vertices, an external tangent bridge between
// two outward arcs' circles, or a straight connecting segment otherwise.
//
// Inward-bulging (concave, relative to the polygon's own centroid) arcs
// never contribute a candidate vertex beyond their own endpoints, so they
// cannot appear verbatim on the returned hull.
func Arcline(al arcline.Arcline) arcline.Arcline {
	if len(al) == 0 {
		return nil
	}

	candidates, owner := candidateVertices(al)
	hullPts := Points(candidates)
	if len(hullPts) < 2 {
		return nil
	}

	out := make(arcline.Arcline, 0, len(hullPts))
	for i := range hullPts {
		p := hullPts[i]
		q := hullPts[(i+1)%len(hullPts)]
		out = append(out, bridge(p, q, owner, al))
	}
	return out
}

// candidateVertices returns every arc endpoint plus, for outward-bulging
// arcs, the circle's cardinal points that lie on the arc. owner maps an
// endpoint back to the arc index it belongs to, so bridge can recognize
// when a hull edge should reuse an original arc verbatim.
func candidateVertices(al arcline.Arcline) ([]point.Point, map[point.Point]int) {
	centroid := centroidOf(al)

	var pts []point.Point
	owner := make(map[point.Point]int, len(al)*2)
	for i, a := range al {
		pts = append(pts, a.A, a.B)
		owner[a.A] = i
		owner[a.B] = i
		if a.IsArc() && isOutward(a, centroid) {
			pts = append(pts, cardinalsOnArc(a)...)
		}
	}
	return pts, owner
}

func centroidOf(al arcline.Arcline) point.Point {
	var sx, sy float64
	n := 0
	for _, a := range al {
		sx += a.A.X + a.B.X
		sy += a.A.Y + a.B.Y
		n += 2
	}
	if n == 0 {
		return point.Zero
	}
	return point.New(sx/float64(n), sy/float64(n))
}

// isOutward reports whether arc a bulges away from centroid. For a minor
// arc (span < pi, the overwhelming common case) the arc's sagitta lies on
// the side of its chord opposite the circle's center, so "bulges away
// from centroid" reduces to: center and centroid fall on the same side of
// the chord.
func isOutward(a arc.Arc, centroid point.Point) bool {
	sideCenter := predicates.Orient2D(coord(a.A), coord(a.B), coord(a.C))
	sideCentroid := predicates.Orient2D(coord(a.A), coord(a.B), coord(centroid))
	return sideCenter*sideCentroid > 0
}

func cardinalsOnArc(a arc.Arc) []point.Point {
	offsets := [4]point.Point{
		point.New(a.R, 0),
		point.New(0, a.R),
		point.New(-a.R, 0),
		point.New(0, -a.R),
	}
	var out []point.Point
	for _, o := range offsets {
		p := a.C.Add(o)
		if a.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// bridge realizes the hull edge from p to q. When both points are
// endpoints of the same original arc, that arc (or its reverse) is
// reused verbatim. When both belong to distinct outward arcs, an external
// tangent bridge connects the two circles. Otherwise p and q are joined
// with a straight segment.
func bridge(p, q point.Point, owner map[point.Point]int, al arcline.Arcline) arc.Arc {
	pi, pOK := owner[p]
	qi, qOK := owner[q]

	if pOK && qOK && pi == qi {
		a := al[pi]
		switch {
		case a.A == p && a.B == q:
			return a
		case a.A == q && a.B == p:
			return a.Reverse()
		}
	}

	if pOK && qOK && al[pi].IsArc() && al[qi].IsArc() && pi != qi {
		c1 := circle.New(al[pi].C, al[pi].R)
		c2 := circle.New(al[qi].C, al[qi].R)
		if t1c1, t1c2, t2c1, t2c2, ok := tangent.CircleCircleExternal(c1, c2); ok {
			d1 := t1c1.Sub(p).Norm() + t1c2.Sub(q).Norm()
			d2 := t2c1.Sub(p).Norm() + t2c2.Sub(q).Norm()
			if d1 <= d2 {
				return arc.Line(t1c1, t1c2)
			}
			return arc.Line(t2c1, t2c2)
		}
	}

	return arc.Line(p, q)
}

func coord(p point.Point) predicates.Coord {
	return predicates.Coord{X: p.X, Y: p.Y}
}
