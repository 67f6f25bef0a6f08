package point

import (
	"fmt"
	"math"

	"github.com/arcspline/geokernel/predicates"
	"github.com/arcspline/geokernel/scalar"
)

// Point is a 2D position or vector with double-precision coordinates. It is
// a plain value type: copied freely, never mutated in place.
type Point struct {
	X, Y float64
}

// New returns the point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Zero is the additive identity.
var Zero = Point{}

func (p Point) String() string {
	return fmt.Sprintf("[%.20f, %.20f]", p.X, p.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Div returns p / s.
func (p Point) Div(s float64) Point {
	return Point{p.X / s, p.Y / s}
}

// Dot returns the dot product p.q, computed with Kahan-compensated
// multiplication to suppress cancellation.
func (p Point) Dot(q Point) float64 {
	return scalar.SumOfProd(p.X, q.X, p.Y, q.Y)
}

// Perp returns the 2D cross product p.x*q.y - p.y*q.x, computed with
// Kahan-compensated multiplication.
func (p Point) Perp(q Point) float64 {
	return scalar.DiffOfProd(p.X, q.Y, p.Y, q.X)
}

// PerpVector returns the vector perpendicular to p, rotated -90 degrees:
// (p.y, -p.x). This is the perpendicular-offset convention arc-from-bulge
// parametrization (§4.2) depends on.
func (p Point) PerpVector() Point {
	return Point{p.Y, -p.X}
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalize returns the unit vector in the direction of p along with its
// original magnitude. The zero vector normalizes to (Zero, 0).
func (p Point) Normalize() (Point, float64) {
	n := p.Norm()
	if n > 0 {
		return Point{p.X / n, p.Y / n}, n
	}
	return Zero, 0
}

// DiffOfProd returns the point (p.X*sa - other.X*sb, p.Y*sa - other.Y*sb);
// see the float64 overload in package scalar. This is the per-component form
// used when building Kahan-compensated centers and offsets.
func (p Point) DiffOfProd(sa float64, other Point, sb float64) Point {
	return Point{
		scalar.DiffOfProd(p.X, sa, other.X, sb),
		scalar.DiffOfProd(p.Y, sa, other.Y, sb),
	}
}

// SumOfProd is the sum-of-products analog of DiffOfProd.
func (p Point) SumOfProd(sa float64, other Point, sb float64) Point {
	return Point{
		scalar.SumOfProd(p.X, sa, other.X, sb),
		scalar.SumOfProd(p.Y, sa, other.Y, sb),
	}
}

// Lerp linearly interpolates between p and q at parameter t (t=0 -> p, t=1 -> q).
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// AlmostEqual reports whether p and q are equal within the given ULP
// tolerance in both coordinates.
func (p Point) AlmostEqual(q Point, ulps int64) bool {
	return scalar.AlmostEqualAsInt(p.X, q.X, ulps) && scalar.AlmostEqualAsInt(p.Y, q.Y, ulps)
}

// CloseEnough reports whether p and q are within eps of each other in both
// coordinates.
func (p Point) CloseEnough(q Point, eps float64) bool {
	return scalar.CloseEnough(p.X, q.X, eps) && scalar.CloseEnough(p.Y, q.Y, eps)
}

// IsFinite reports whether both coordinates are finite (not NaN or ±Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// SortCollinear4 sorts four points, assumed collinear, along their shared
// direction using a sort-network over a perpendicular probe axis rather
// than an angle computation. Ascending/descending order is not meaningful,
// only that the result is consistently ordered along the line. Grounded on
// Point::sort_parallel_points in
// _examples/original_source/src/point.rs.
func SortCollinear4(a, b, c, d Point) (Point, Point, Point, Point) {
	diff0 := a.Sub(b)
	diff1 := c.Sub(d)

	var perp Point
	if math.Abs(diff0.Dot(diff0)) >= math.Abs(diff1.Dot(diff1)) {
		perp = Point{diff0.Y, -diff0.X}
	} else {
		perp = Point{diff1.Y, -diff1.X}
	}
	probe := predicates.Coord{X: perp.X, Y: perp.Y}

	pts := [4]Point{a, b, c, d}
	coord := func(p Point) predicates.Coord { return predicates.Coord{X: p.X, Y: p.Y} }

	swap := func(i, j int) { pts[i], pts[j] = pts[j], pts[i] }

	if predicates.Orient2D(probe, coord(pts[1]), coord(pts[3])) < 0 {
		swap(1, 3)
	}
	if predicates.Orient2D(probe, coord(pts[0]), coord(pts[2])) < 0 {
		swap(0, 2)
	}
	if predicates.Orient2D(probe, coord(pts[0]), coord(pts[1])) < 0 {
		swap(0, 1)
	}
	if predicates.Orient2D(probe, coord(pts[2]), coord(pts[3])) < 0 {
		swap(2, 3)
	}
	if predicates.Orient2D(probe, coord(pts[1]), coord(pts[2])) < 0 {
		swap(1, 2)
	}

	return pts[0], pts[1], pts[2], pts[3]
}
