package arc

import (
	"math"

	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
)

// FromBulge builds the arc spanning the chord p1-p2 with the given bulge
// (bulge = tan(theta/4), where theta is the arc's included angle; positive
// bulge bows right of the directed chord p1->p2, so the arc runs CCW from
// p1 to p2, and negative bulge bows left). The
// result is always the CCW-oriented arc: when bulge is negative, the
// endpoints are swapped and the bulge negated before the circle is fit, so
// FromBulge never returns a clockwise arc. A bulge magnitude below
// scalar.MinBulge, or endpoints closer than scalar.CollapsedArcEpsilon,
// degenerates to a line segment.
//
// Grounded on arc_circle_parametrization in
// _examples/original_source/src/arc.rs.
func FromBulge(p1, p2 point.Point, bulge float64) Arc {
	if math.Abs(bulge) < scalar.MinBulge || p1.CloseEnough(p2, scalar.CollapsedArcEpsilon) {
		return Line(p1, p2)
	}
	if bulge < 0 {
		p1, p2 = p2, p1
		bulge = -bulge
	}

	chord := p2.Sub(p1).Norm()
	dt2 := (1.0 + bulge) * (1.0 - bulge) / (4.0 * bulge)
	cx := 0.5*p1.X + 0.5*p2.X + dt2*(p1.Y-p2.Y)
	cy := 0.5*p1.Y + 0.5*p2.Y + dt2*(p2.X-p1.X)
	r := 0.25 * chord * math.Abs(1.0/bulge+bulge)

	return New(p1, p2, point.New(cx, cy), r)
}

// BulgeOf returns the bulge that FromBulge would need to reconstruct a's
// chord A-B and circle (C, R): a chord+bulge representation is not stored
// on Arc itself, so this recomputes it from the signed distance between
// the chord midpoint and the center.
//
// Lines carry a bulge of 0 by convention. This formula is this kernel's
// own derivation: the retrieved original source only provides the forward
// direction (arc_circle_parametrization); no inverse was found among the
// retrieved files. It is verified against arc_circle_parametrization's own
// fixtures (e.g. bulge 0.5 from (100,100)-(200,200) round-trips exactly)
// and satisfies BulgeOf(FromBulge(p1, p2, g)) == g for positive g.
func BulgeOf(a Arc) float64 {
	if a.IsLine() {
		return 0
	}
	chord := a.B.Sub(a.A).Norm()
	if chord < scalar.DivisionEpsilon {
		return 0
	}
	mid := a.A.Add(a.B).Scale(0.5)
	perp := a.A.Sub(a.B).PerpVector()
	dmc := a.C.Sub(mid).Dot(perp) / chord
	return 2.0 * (a.R - dmc) / chord
}
