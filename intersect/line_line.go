package intersect

import (
	"math"

	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/predicates"
)

// LineLineKind discriminates the outcome of LineLine.
type LineLineKind int

const (
	OnePoint LineLineKind = iota
	ParallelDistinct
	ParallelCoincident
)

// LineLineConfig is the result of LineLine. P, S0, S1 are only meaningful
// when Kind is OnePoint: P = l0.Origin + S0*l0.Dir = l1.Origin + S1*l1.Dir.
type LineLineConfig struct {
	Kind   LineLineKind
	P      point.Point
	S0, S1 float64
}

// nearParallelThreshold is the magnitude below which |dir0 x dir1| is
// treated as parallel even when the exact orient2d sign was non-zero,
// guarding against catastrophic parameter blow-up on near-parallel input.
const nearParallelThreshold = 1e-13

// LineLine classifies the intersection of two lines: an exact orient2d
// sign distinguishes parallel from crossing, with a magnitude-based
// safety rail suppressing blow-up on near-parallel non-zero-det inputs.
func LineLine(l0, l1 line.Line) LineLineConfig {
	zero := point.Zero
	det := predicates.Orient2D(coord(zero), coord(l0.Dir), coord(l1.Dir))

	if det == 0 {
		q := l1.Origin.Sub(l0.Origin)
		if predicates.Orient2D(coord(zero), coord(q), coord(l1.Dir)) == 0 {
			return LineLineConfig{Kind: ParallelCoincident}
		}
		return LineLineConfig{Kind: ParallelDistinct}
	}

	q := l1.Origin.Sub(l0.Origin)
	return lineLineSolve(l0, l1, q, det)
}

func lineLineSolve(l0, l1 line.Line, q point.Point, det float64) LineLineConfig {
	if math.Abs(l0.Dir.Perp(l1.Dir)) < nearParallelThreshold {
		return LineLineConfig{Kind: ParallelDistinct}
	}

	s0 := q.Perp(l1.Dir) / det
	s1 := q.Perp(l0.Dir) / det

	scaleCap := math.Max(l0.Dir.Norm()+l1.Dir.Norm()+q.Norm(), 1) * 1e8
	if math.Abs(s0) > scaleCap || math.Abs(s1) > scaleCap {
		return LineLineConfig{Kind: ParallelDistinct}
	}

	p := l0.Origin.Add(l0.Dir.Scale(s0))
	return LineLineConfig{Kind: OnePoint, P: p, S0: s0, S1: s1}
}

func coord(p point.Point) predicates.Coord {
	return predicates.Coord{X: p.X, Y: p.Y}
}
