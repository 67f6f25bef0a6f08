package tangent

import (
	"math"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
)

// PointToCircle returns the two tangent points on c as seen from the
// external point p, ok reporting whether p is genuinely outside the
// circle (strictly, by more than scalar.GeometricEpsilon). The foot of
// the perpendicular from c.C onto either tangent line lies on the segment
// from c.C to p at distance r^2/d from c.C; the perpendicular offset from
// that foot to each tangent point is r*l/d, where l = sqrt(d^2-r^2) is
// the tangent-line length. Grounded on spec.md §4.9.
func PointToCircle(p point.Point, c circle.Circle) (t1, t2 point.Point, ok bool) {
	v := p.Sub(c.C)
	d := v.Norm()
	if d <= c.R+scalar.GeometricEpsilon || d < scalar.DivisionEpsilon {
		return point.Zero, point.Zero, false
	}

	l := math.Sqrt(d*d - c.R*c.R)
	unit := v.Scale(1 / d)
	foot := c.C.Add(unit.Scale(c.R * c.R / d))
	perp := unit.PerpVector()
	offset := perp.Scale(c.R * l / d)

	return foot.Add(offset), foot.Sub(offset), true
}

// CircleCircleExternal returns the two external tangent lines between c1
// and c2, each as a pair of tangent points (one on each circle). ok is
// false for concentric circles, circles of non-positive radius, or when
// one circle lies inside the other (no external tangent exists).
//
// Equal-radius circles have tangent lines parallel to the center line,
// offset by ±r on each side. Unequal radii are resolved via the external
// homothety center H = (r2*C1 - r1*C2)/(r2-r1): the two tangent lines from
// H to the helper circle (C1, r1) are exactly the two external tangents of
// the pair, so H's tangent points on circle1 (via PointToCircle) give one
// endpoint of each line; the matching point on circle2 is the foot of the
// perpendicular from C2 onto that same line (exact because the line is, by
// construction, also tangent to circle2).
func CircleCircleExternal(c1, c2 circle.Circle) (t1c1, t1c2, t2c1, t2c2 point.Point, ok bool) {
	if c1.R <= 0 || c2.R <= 0 {
		return point.Zero, point.Zero, point.Zero, point.Zero, false
	}

	v := c2.C.Sub(c1.C)
	d := v.Norm()
	if d < scalar.DivisionEpsilon {
		return point.Zero, point.Zero, point.Zero, point.Zero, false
	}
	if math.Abs(c1.R-c2.R) >= d-scalar.GeometricEpsilon {
		return point.Zero, point.Zero, point.Zero, point.Zero, false
	}

	if scalar.CloseEnough(c1.R, c2.R, scalar.GeometricEpsilon) {
		dir := v.Scale(1 / d)
		perp := dir.PerpVector()
		offset := perp.Scale(c1.R)
		t1c1 = c1.C.Add(offset)
		t1c2 = c2.C.Add(offset)
		t2c1 = c1.C.Sub(offset)
		t2c2 = c2.C.Sub(offset)
		return t1c1, t1c2, t2c1, t2c2, true
	}

	h := c1.C.Scale(c2.R).Sub(c2.C.Scale(c1.R)).Div(c2.R - c1.R)
	hp1, hp2, hOK := PointToCircle(h, c1)
	if !hOK {
		return point.Zero, point.Zero, point.Zero, point.Zero, false
	}

	t1c1 = hp1
	t1c2 = projectOntoLine(h, hp1, c2.C)
	t2c1 = hp2
	t2c2 = projectOntoLine(h, hp2, c2.C)
	return t1c1, t1c2, t2c1, t2c2, true
}

// projectOntoLine returns the foot of the perpendicular from p onto the
// line through a and b.
func projectOntoLine(a, b, p point.Point) point.Point {
	dir, norm := b.Sub(a).Normalize()
	if norm == 0 {
		return a
	}
	t := p.Sub(a).Dot(dir)
	return a.Add(dir.Scale(t))
}
