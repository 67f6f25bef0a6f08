package bounding

import (
	"math"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/predicates"
	"github.com/arcspline/geokernel/rect"
	"github.com/arcspline/geokernel/scalar"
)

// cardinal holds the four points where a full circle crosses its own
// bounding box, in (angle, point) pairs: right, top, left, bottom.
type cardinal struct {
	angle float64
	p     point.Point
}

func cardinals(c point.Point, r float64) [4]cardinal {
	return [4]cardinal{
		{0, c.Add(point.New(r, 0))},
		{math.Pi / 2, c.Add(point.New(0, r))},
		{math.Pi, c.Add(point.New(-r, 0))},
		{3 * math.Pi / 2, c.Add(point.New(0, -r))},
	}
}

// angleInRange reports whether angle lies in the CCW span [start, end],
// both normalized to [0, 2pi), wrapping through 2pi if start > end.
func angleInRange(angle, start, end float64) bool {
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

func normalizeAngle(a float64) float64 {
	if a < 0 {
		return a + 2*math.Pi
	}
	return a
}

// spanAndCandidates computes the arc's CCW angular span and the set of
// points a tight bound must consider: both endpoints, plus any cardinal
// extrema of the full circle that fall within the span.
func spanAndCandidates(a arc.Arc) (span float64, candidates []point.Point) {
	startAngle := math.Atan2(a.A.Y-a.C.Y, a.A.X-a.C.X)
	endAngle := math.Atan2(a.B.Y-a.C.Y, a.B.X-a.C.X)

	span = endAngle - startAngle
	if span < 0 {
		span += 2 * math.Pi
	}

	startNorm := normalizeAngle(startAngle)
	endNorm := normalizeAngle(endAngle)

	candidates = []point.Point{a.A, a.B}
	for _, cd := range cardinals(a.C, a.R) {
		if angleInRange(cd.angle, startNorm, endNorm) {
			candidates = append(candidates, cd.p)
		}
	}
	return span, candidates
}

// ArcCircle returns the minimal circle enclosing a. Line segments bound to
// the circle with the chord as diameter; a full circle (a.A == a.B on a
// finite radius) bounds to its own circle; an arc spanning more than pi
// radians also bounds to its own circle (no smaller circle can enclose a
// span that wide); smaller arcs bound to the minimal enclosing circle of
// the endpoints plus whichever cardinal extrema fall within the span.
func ArcCircle(a arc.Arc) circle.Circle {
	if a.IsLine() {
		mid := a.A.Add(a.B).Scale(0.5)
		return circle.New(mid, a.A.Sub(a.B).Norm()*0.5)
	}

	if a.A.CloseEnough(a.B, scalar.CollapsedArcEpsilon) {
		if a.R > scalar.CollapsedArcEpsilon {
			return circle.New(a.C, a.R)
		}
		return circle.New(a.A, 0)
	}

	span, candidates := spanAndCandidates(a)
	if span > math.Pi {
		return circle.New(a.C, a.R)
	}
	return minimalEnclosingCircle(candidates)
}

// ArcRect returns the axis-aligned bounding rectangle of a, built from the
// same endpoint-plus-cardinal-extrema candidate set as ArcCircle (minus
// the span>pi shortcut, since a tight AABB still only needs the extrema
// actually inside the span regardless of how wide that span is).
func ArcRect(a arc.Arc) rect.Rect {
	if a.IsLine() {
		return rect.FromPoints([]point.Point{a.A, a.B})
	}
	if a.A.CloseEnough(a.B, scalar.CollapsedArcEpsilon) {
		if a.R > scalar.CollapsedArcEpsilon {
			return rect.New(point.New(a.C.X-a.R, a.C.Y-a.R), point.New(a.C.X+a.R, a.C.Y+a.R))
		}
		return rect.New(a.A, a.A)
	}
	_, candidates := spanAndCandidates(a)
	return rect.FromPoints(candidates)
}

// minimalEnclosingCircle computes the smallest circle enclosing a small
// point set (at most six points, in practice: two endpoints plus up to
// four cardinal extrema) using an incremental Welzl-style pass: start from
// the diameter circle of the first two points, and whenever a later point
// falls outside the current circle, rebuild the circle from scratch so it
// passes through that point. Containment, for 2-point (diameter) and
// 3-point (circumscribed) circles alike, is a plain distance comparison
// with scalar.GeometricEpsilon slack (circleContainsDist); the InCircle
// predicate is not used.
func minimalEnclosingCircle(pts []point.Point) circle.Circle {
	switch len(pts) {
	case 0:
		return circle.New(point.Zero, 0)
	case 1:
		return circle.New(pts[0], 0)
	}

	c := diameterCircle(pts[0], pts[1])
	for i := 2; i < len(pts); i++ {
		if !circleContainsDist(c, pts[i]) {
			c = minimalWithPoint(pts[:i+1], pts[i])
		}
	}
	return c
}

func diameterCircle(a, b point.Point) circle.Circle {
	return circle.New(a.Add(b).Scale(0.5), a.Sub(b).Norm()*0.5)
}

func circleContainsDist(c circle.Circle, p point.Point) bool {
	return p.Sub(c.C).Norm() <= c.R+scalar.GeometricEpsilon
}

// minimalWithPoint finds the smallest circle through p that also encloses
// every point in pts, trying p paired with each other point as a diameter
// and p with each pair of other points as a circumcircle.
func minimalWithPoint(pts []point.Point, p point.Point) circle.Circle {
	best := circle.New(p, 0)
	haveBest := false

	consider := func(cand circle.Circle) {
		if !containsAll(cand, pts) {
			return
		}
		if !haveBest || cand.R < best.R {
			best, haveBest = cand, true
		}
	}

	for _, q := range pts {
		if q == p {
			continue
		}
		consider(diameterCircle(p, q))
	}

	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if cc, ok := circumcircle(p, pts[i], pts[j]); ok {
				consider(cc)
			}
		}
	}

	if !haveBest {
		return circle.New(p, 0)
	}
	return best
}

func containsAll(c circle.Circle, pts []point.Point) bool {
	for _, p := range pts {
		if !circleContainsDist(c, p) {
			return false
		}
	}
	return true
}

// circumcircle returns the circle through p1, p2, p3, or ok=false if the
// three points are collinear (per the robust Orient2D sign).
func circumcircle(p1, p2, p3 point.Point) (circle.Circle, bool) {
	o := predicates.Orient2D(coord(p1), coord(p2), coord(p3))
	if math.Abs(o) < scalar.GeometricEpsilon {
		return circle.Circle{}, false
	}

	aNorm := p1.Dot(p1)
	bNorm := p2.Dot(p2)
	cNorm := p3.Dot(p3)
	d := 2 * o

	ux := (aNorm*(p2.Y-p3.Y) + bNorm*(p3.Y-p1.Y) + cNorm*(p1.Y-p2.Y)) / d
	uy := (aNorm*(p3.X-p2.X) + bNorm*(p1.X-p3.X) + cNorm*(p2.X-p1.X)) / d

	center := point.New(ux, uy)
	return circle.New(center, p1.Sub(center).Norm()), true
}

func coord(p point.Point) predicates.Coord {
	return predicates.Coord{X: p.X, Y: p.Y}
}
