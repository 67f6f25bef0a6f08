package intersect

import (
	"math"

	"github.com/arcspline/geokernel/interval"
	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/predicates"
	"github.com/arcspline/geokernel/scalar"
	"github.com/arcspline/geokernel/segment"
)

// SegSegKind discriminates the outcome of SegmentSegment.
type SegSegKind int

const (
	SegSegNoIntersection SegSegKind = iota
	SegSegOnePoint
	SegSegOnePointTouching
	SegSegTwoPoints
	SegSegTwoPointsTouching
)

// SegSegConfig is the result of SegmentSegment. P0 is valid for all Kinds
// except SegSegNoIntersection; P1 is additionally valid for SegSegTwoPoints
// and SegSegTwoPointsTouching.
type SegSegConfig struct {
	Kind   SegSegKind
	P0, P1 point.Point
}

// SegmentSegment classifies the intersection of two segments. Zero-length
// segments (degenerate points) are handled via a dedicated
// collinearity-and-between test; otherwise the general line x line
// predicate is used and filtered by each segment's [0,1] parameter
// extent, with collinear overlaps resolved via interval x interval on the
// shared projection axis.
func SegmentSegment(s0, s1 segment.Segment) SegSegConfig {
	zero0 := s0.A.CloseEnough(s0.B, scalar.GeometricEpsilon)
	zero1 := s1.A.CloseEnough(s1.B, scalar.GeometricEpsilon)

	switch {
	case zero0 && zero1:
		if s0.A.CloseEnough(s1.A, scalar.GeometricEpsilon) {
			return SegSegConfig{Kind: SegSegOnePointTouching, P0: s0.A}
		}
		return SegSegConfig{Kind: SegSegNoIntersection}
	case zero0:
		return pointOnSegment(s0.A, s1)
	case zero1:
		return pointOnSegment(s1.A, s0)
	}

	l0 := line.New(s0.A, s0.B.Sub(s0.A))
	l1 := line.New(s1.A, s1.B.Sub(s1.A))
	ll := LineLine(l0, l1)

	switch ll.Kind {
	case OnePoint:
		if inUnitRange(ll.S0) && inUnitRange(ll.S1) {
			if isSegmentSharedEndpoint(s0, s1, ll.P) {
				return SegSegConfig{Kind: SegSegOnePointTouching, P0: ll.P}
			}
			return SegSegConfig{Kind: SegSegOnePoint, P0: ll.P}
		}
		return SegSegConfig{Kind: SegSegNoIntersection}
	case ParallelDistinct:
		return SegSegConfig{Kind: SegSegNoIntersection}
	default: // ParallelCoincident
		return collinearOverlap(s0, s1)
	}
}

func inUnitRange(s float64) bool {
	return s >= -scalar.GeometricEpsilon && s <= 1+scalar.GeometricEpsilon
}

func isSegmentSharedEndpoint(s0, s1 segment.Segment, p point.Point) bool {
	on0 := p.CloseEnough(s0.A, scalar.GeometricEpsilon) || p.CloseEnough(s0.B, scalar.GeometricEpsilon)
	on1 := p.CloseEnough(s1.A, scalar.GeometricEpsilon) || p.CloseEnough(s1.B, scalar.GeometricEpsilon)
	return on0 && on1
}

// pointOnSegment tests whether degenerate point p lies on segment s, via
// collinearity (orient2d) and a between-bounds check on the projection.
func pointOnSegment(p point.Point, s segment.Segment) SegSegConfig {
	if predicates.Orient2D(coord(s.A), coord(s.B), coord(p)) != 0 {
		return SegSegConfig{Kind: SegSegNoIntersection}
	}
	dir := s.B.Sub(s.A)
	t := p.Sub(s.A).Dot(dir) / dir.Dot(dir)
	if t < -scalar.GeometricEpsilon || t > 1+scalar.GeometricEpsilon {
		return SegSegConfig{Kind: SegSegNoIntersection}
	}
	if p.CloseEnough(s.A, scalar.GeometricEpsilon) || p.CloseEnough(s.B, scalar.GeometricEpsilon) {
		return SegSegConfig{Kind: SegSegOnePointTouching, P0: p}
	}
	return SegSegConfig{Kind: SegSegOnePoint, P0: p}
}

func collinearOverlap(s0, s1 segment.Segment) SegSegConfig {
	dir := s0.B.Sub(s0.A)
	unit, length := dir.Normalize()
	if length == 0 {
		// s0 is degenerate despite passing the zero0 check's tolerance;
		// fall back to treating s1 as the reference axis.
		dir = s1.B.Sub(s1.A)
		unit, length = dir.Normalize()
	}

	iv0 := interval.New(0, length)
	a1 := s1.A.Sub(s0.A).Dot(unit)
	b1 := s1.B.Sub(s0.A).Dot(unit)
	lo1, hi1 := math.Min(a1, b1), math.Max(a1, b1)
	iv1 := interval.New(lo1, hi1)

	cfg := interval.Intersect(iv0, iv1)
	switch cfg.Kind {
	case interval.NoOverlap:
		return SegSegConfig{Kind: SegSegNoIntersection}
	case interval.Touching:
		p := s0.A.Add(unit.Scale(cfg.Lo))
		return SegSegConfig{Kind: SegSegOnePointTouching, P0: p}
	default: // interval.Overlap
		p0 := s0.A.Add(unit.Scale(cfg.Lo))
		p1 := s0.A.Add(unit.Scale(cfg.Hi))
		if coincideAsTwins(s0, s1) {
			return SegSegConfig{Kind: SegSegTwoPointsTouching, P0: p0, P1: p1}
		}
		return SegSegConfig{Kind: SegSegTwoPoints, P0: p0, P1: p1}
	}
}

func coincideAsTwins(s0, s1 segment.Segment) bool {
	sameOrder := s0.A.CloseEnough(s1.A, scalar.GeometricEpsilon) && s0.B.CloseEnough(s1.B, scalar.GeometricEpsilon)
	reversed := s0.A.CloseEnough(s1.B, scalar.GeometricEpsilon) && s0.B.CloseEnough(s1.A, scalar.GeometricEpsilon)
	return sameOrder || reversed
}
