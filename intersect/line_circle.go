package intersect

import (
	"math"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
)

// LineCircleKind discriminates the outcome of LineCircle.
type LineCircleKind int

const (
	NoIntersection LineCircleKind = iota
	LineCircleOnePoint
	LineCircleTwoPoints
)

// LineCircleConfig is the result of LineCircle. P0/T0 are valid for
// LineCircleOnePoint and LineCircleTwoPoints; P1/T1 are valid only for
// LineCircleTwoPoints, with T0 <= T1.
type LineCircleConfig struct {
	Kind   LineCircleKind
	P0, P1 point.Point
	T0, T1 float64
}

// LineCircle intersects l with c by substituting l's parametrization into
// the circle equation and solving the resulting quadratic with a
// Kahan-compensated discriminant to avoid cancellation when the line
// nearly grazes the circle.
func LineCircle(l line.Line, c circle.Circle) LineCircleConfig {
	rel := l.Origin.Sub(c.C)
	a := l.Dir.Dot(l.Dir)
	if a < scalar.DivisionEpsilon {
		return LineCircleConfig{Kind: NoIntersection}
	}
	b := 2 * rel.Dot(l.Dir)
	cc := rel.Dot(rel) - c.R*c.R

	disc := scalar.DiffOfProd(b, b, 4*a, cc)
	if disc < 0 {
		if disc > -scalar.GeometricEpsilon {
			disc = 0
		} else {
			return LineCircleConfig{Kind: NoIntersection}
		}
	}

	if disc == 0 {
		t := -b / (2 * a)
		return LineCircleConfig{Kind: LineCircleOnePoint, P0: atParam(l, t), T0: t}
	}

	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	return LineCircleConfig{
		Kind: LineCircleTwoPoints,
		P0:   atParam(l, t0), T0: t0,
		P1: atParam(l, t1), T1: t1,
	}
}

func atParam(l line.Line, t float64) point.Point {
	return l.Origin.Add(l.Dir.Scale(t))
}
