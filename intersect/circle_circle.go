package intersect

import (
	"math"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
)

// CircleCircleKind discriminates the outcome of CircleCircle.
type CircleCircleKind int

const (
	CircleCircleDisjoint CircleCircleKind = iota
	CircleCircleSameCircles
	CircleCircleTangent
	CircleCircleTwoPoints
)

// CircleCircleConfig is the result of CircleCircle. P0 is valid for
// CircleCircleTangent and CircleCircleTwoPoints; P1 is additionally valid
// for CircleCircleTwoPoints.
type CircleCircleConfig struct {
	Kind   CircleCircleKind
	P0, P1 point.Point
}

// CircleCircle classifies the intersection of two circles, computing the
// two-point case with Kahan-compensated forms to avoid cancellation in
// the radical-line parameter s = ((r0^2-r1^2)/d^2 + 1) / 2.
func CircleCircle(c0, c1 circle.Circle) CircleCircleConfig {
	u := c1.C.Sub(c0.C)
	d2 := u.Dot(u)

	if d2 < scalar.GeometricEpsilon*scalar.GeometricEpsilon {
		if scalar.CloseEnough(c0.R, c1.R, scalar.GeometricEpsilon) {
			return CircleCircleConfig{Kind: CircleCircleSameCircles}
		}
		return CircleCircleConfig{Kind: CircleCircleDisjoint}
	}

	sumR := c0.R + c1.R
	diffR := c0.R - c1.R
	minDist2 := diffR * diffR
	maxDist2 := sumR * sumR

	externallyTangent := scalar.CloseEnough(d2, maxDist2, scalar.GeometricEpsilon)
	internallyTangent := scalar.CloseEnough(d2, minDist2, scalar.GeometricEpsilon)
	if externallyTangent || internallyTangent {
		d := math.Sqrt(d2)
		unit := u.Scale(1 / d)
		sign := 1.0
		if internallyTangent && diffR < 0 {
			sign = -1.0
		}
		tp := c0.C.Add(unit.Scale(sign * c0.R))
		return CircleCircleConfig{Kind: CircleCircleTangent, P0: tp}
	}

	if d2 < minDist2 || d2 > maxDist2 {
		return CircleCircleConfig{Kind: CircleCircleDisjoint}
	}

	rSq := scalar.DiffOfProd(c0.R, c0.R, c1.R, c1.R)
	s := (rSq/d2 + 1) / 2
	a := s * math.Sqrt(d2)

	disc := scalar.DiffOfProd(c0.R, c0.R, a, a)
	if disc < 0 {
		disc = 0
	}
	h := math.Sqrt(disc)
	d := math.Sqrt(d2)
	t := h / d

	center := c0.C.Add(u.Scale(s))
	perp := u.PerpVector()
	p0 := center.Add(perp.Scale(t))
	p1 := center.Sub(perp.Scale(t))
	return CircleCircleConfig{Kind: CircleCircleTwoPoints, P0: p0, P1: p1}
}
