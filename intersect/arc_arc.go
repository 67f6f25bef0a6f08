package intersect

import (
	"math"
	"sort"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
	"github.com/arcspline/geokernel/segment"
)

// ArcArcKind discriminates the outcome of ArcArc. The sub-arc variants
// (OneSubArc, OnePointAndSubArc, TwoSubArcs, FullOverlap) arise when both
// arcs lie on the same circle, and OneSubArc also for two overlapping
// collinear line arcs. OneEndpoint/TwoEndpoints mark points where the arcs
// merely touch at a shared endpoint; NoIntersection/OnePoint/TwoPoints
// cover the remaining cases.
type ArcArcKind int

const (
	ArcArcNoIntersection ArcArcKind = iota
	ArcArcOnePoint
	ArcArcTwoPoints
	ArcArcOneEndpoint
	ArcArcTwoEndpoints
	ArcArcOneSubArc
	ArcArcOnePointAndSubArc
	ArcArcTwoSubArcs
	ArcArcFullOverlap
)

// ArcArcConfig is the result of ArcArc. P0/P1 are valid for the point
// variants; OnePointAndSubArc also carries its touching point in P0.
// SubArc0/SubArc1 are valid for the sub-arc variants (OnePointAndSubArc
// carries its overlapping sub-arc in SubArc0).
type ArcArcConfig struct {
	Kind             ArcArcKind
	P0, P1           point.Point
	SubArc0, SubArc1 arc.Arc
}

// ArcArc classifies the intersection of two arcs by first intersecting
// their supporting circles, then filtering candidate points by
// containment in both arcs' CCW spans. When the two arcs share a circle,
// containment alone cannot separate "touching at an endpoint" from
// "overlapping along a sub-arc", so the cocircular case is resolved by
// intersecting the two arcs' angular spans directly (see cocircularArcArc).
//
// arcline.Arcline mixes line arcs (R == +Inf) with genuine circular arcs,
// so a pair reaching ArcArc may be two lines, one line and one arc, or two
// arcs; the first two cases are delegated to SegmentSegment/SegmentArc,
// whose results are reshaped into ArcArcConfig so callers need only one
// entry point regardless of which kind of arc they hold.
func ArcArc(a0, a1 arc.Arc) ArcArcConfig {
	switch {
	case a0.IsLine() && a1.IsLine():
		return fromSegSeg(SegmentSegment(segment.New(a0.A, a0.B), segment.New(a1.A, a1.B)))
	case a0.IsLine():
		return fromSegmentArc(SegmentArc(segment.New(a0.A, a0.B), a1))
	case a1.IsLine():
		return fromSegmentArc(SegmentArc(segment.New(a1.A, a1.B), a0))
	}

	cc := intersectCircles(a0, a1)
	if cc.Kind == CircleCircleSameCircles {
		return cocircularArcArc(a0, a1)
	}

	var candidates []point.Point
	switch cc.Kind {
	case CircleCircleTangent:
		candidates = []point.Point{cc.P0}
	case CircleCircleTwoPoints:
		candidates = []point.Point{cc.P0, cc.P1}
	default:
		return ArcArcConfig{Kind: ArcArcNoIntersection}
	}

	var hits []point.Point
	for _, p := range candidates {
		if a0.Contains(p) && a1.Contains(p) {
			hits = append(hits, p)
		}
	}

	// A hit at an endpoint of both arcs is a mere touch at a shared
	// endpoint, judged with the same tolerance as isSharedEndpoint.
	touching := func(p point.Point) bool {
		near := func(a arc.Arc) bool {
			return p.CloseEnough(a.A, scalar.GeometricEpsilon) || p.CloseEnough(a.B, scalar.GeometricEpsilon)
		}
		return near(a0) && near(a1)
	}

	switch len(hits) {
	case 0:
		return ArcArcConfig{Kind: ArcArcNoIntersection}
	case 1:
		if touching(hits[0]) {
			return ArcArcConfig{Kind: ArcArcOneEndpoint, P0: hits[0]}
		}
		return ArcArcConfig{Kind: ArcArcOnePoint, P0: hits[0]}
	default:
		if touching(hits[0]) && touching(hits[1]) {
			return ArcArcConfig{Kind: ArcArcTwoEndpoints, P0: hits[0], P1: hits[1]}
		}
		return ArcArcConfig{Kind: ArcArcTwoPoints, P0: hits[0], P1: hits[1]}
	}
}

func intersectCircles(a0, a1 arc.Arc) CircleCircleConfig {
	return CircleCircle(circle.New(a0.C, a0.R), circle.New(a1.C, a1.R))
}

// fromSegSeg reshapes a SegmentSegment result into an ArcArcConfig, the
// line-arc analogue of a cocircular overlap: a touching endpoint maps to
// OneEndpoint/TwoEndpoints, a genuine crossing or collinear run maps to
// OnePoint/OneSubArc, matching how callers already interpret
// those kinds for curved arcs.
func fromSegSeg(cfg SegSegConfig) ArcArcConfig {
	switch cfg.Kind {
	case SegSegOnePoint:
		return ArcArcConfig{Kind: ArcArcOnePoint, P0: cfg.P0}
	case SegSegOnePointTouching:
		return ArcArcConfig{Kind: ArcArcOneEndpoint, P0: cfg.P0}
	case SegSegTwoPoints:
		return ArcArcConfig{Kind: ArcArcOneSubArc, SubArc0: arc.Line(cfg.P0, cfg.P1)}
	case SegSegTwoPointsTouching:
		return ArcArcConfig{Kind: ArcArcTwoEndpoints, P0: cfg.P0, P1: cfg.P1}
	default:
		return ArcArcConfig{Kind: ArcArcNoIntersection}
	}
}

// fromSegmentArc reshapes a SegmentArc result the same way fromSegSeg
// does for two lines.
func fromSegmentArc(cfg SegmentArcConfig) ArcArcConfig {
	switch cfg.Kind {
	case LineCircleOnePoint:
		if cfg.Touching0 {
			return ArcArcConfig{Kind: ArcArcOneEndpoint, P0: cfg.P0}
		}
		return ArcArcConfig{Kind: ArcArcOnePoint, P0: cfg.P0}
	case LineCircleTwoPoints:
		if cfg.Touching0 && cfg.Touching1 {
			return ArcArcConfig{Kind: ArcArcTwoEndpoints, P0: cfg.P0, P1: cfg.P1}
		}
		return ArcArcConfig{Kind: ArcArcTwoPoints, P0: cfg.P0, P1: cfg.P1}
	default:
		return ArcArcConfig{Kind: ArcArcNoIntersection}
	}
}

const twoPi = 2 * math.Pi

// angularEpsilon is the tolerance, in radians, below which an angular
// interval's length is treated as a single touching point rather than a
// genuine sub-arc. It plays the same role for angles that
// scalar.GeometricEpsilon plays for coordinates.
const angularEpsilon = 1e-9

// angleOf returns the angle of p around center c.
func angleOf(c, p point.Point) float64 {
	return math.Atan2(p.Y-c.Y, p.X-c.X)
}

// arcSpan returns a's CCW angular span as (start, sweep): start in
// [0, 2*pi), sweep in (0, 2*pi]. sweep == 2*pi denotes a full circle
// (a.A == a.B on a finite-radius arc).
func arcSpan(a arc.Arc) (start, sweep float64) {
	start = angleOf(a.C, a.A)
	if start < 0 {
		start += twoPi
	}
	if a.A.CloseEnough(a.B, scalar.CollapsedArcEpsilon) {
		return start, twoPi
	}
	end := angleOf(a.C, a.B)
	if end < 0 {
		end += twoPi
	}
	sweep = end - start
	if sweep <= 0 {
		sweep += twoPi
	}
	return start, sweep
}

// angleInterval is one connected run of angles, represented on the real
// line rather than mod 2*pi, so copies shifted by whole turns can be
// intersected and merged with ordinary interval arithmetic before the
// result is mapped back onto the circle.
type angleInterval struct {
	start, length float64
}

// overlapIntervals returns the connected components where angular spans
// (s0, l0) and (s1, l1) agree. Each span is a single contiguous run, so
// except for floating-point noise at a shared boundary there are at most
// two components.
func overlapIntervals(s0, l0, s1, l1 float64) []angleInterval {
	var raw []angleInterval
	for k := -1; k <= 2; k++ {
		shift := float64(k) * twoPi
		lo := math.Max(s0, s1+shift)
		hi := math.Min(s0+l0, s1+shift+l1)
		if hi >= lo {
			raw = append(raw, angleInterval{start: lo, length: hi - lo})
		}
	}
	if len(raw) == 0 {
		return nil
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i].start < raw[j].start })

	merged := []angleInterval{raw[0]}
	for _, iv := range raw[1:] {
		last := &merged[len(merged)-1]
		if iv.start <= last.start+last.length+angularEpsilon {
			if end := iv.start + iv.length; end > last.start+last.length {
				last.length = end - last.start
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

func pointAt(c point.Point, r, theta float64) point.Point {
	return point.New(c.X+r*math.Cos(theta), c.Y+r*math.Sin(theta))
}

func subArcFromInterval(c point.Point, r float64, iv angleInterval) arc.Arc {
	return arc.New(pointAt(c, r, iv.start), pointAt(c, r, iv.start+iv.length), c, r)
}

// cocircularArcArc resolves two arcs known to share a circle by
// intersecting their CCW angular spans directly. Each connected component
// of agreement is either a zero-length point (the spans merely touch tip
// to tip, as the complementary halves of a circle do) or a genuine
// sub-arc; the result is classified by how many of each kind survive.
func cocircularArcArc(a0, a1 arc.Arc) ArcArcConfig {
	s0, l0 := arcSpan(a0)
	s1, l1 := arcSpan(a1)

	comps := overlapIntervals(s0, l0, s1, l1)
	switch {
	case len(comps) == 0:
		return ArcArcConfig{Kind: ArcArcNoIntersection}
	case len(comps) == 1:
		return classifySingle(a0, l0, a1, l1, comps[0])
	default:
		if len(comps) > 2 {
			// Two single-span arcs intersect in at most two connected
			// components; rounding noise producing more is collapsed to
			// the two most significant (by length) components.
			sort.Slice(comps, func(i, j int) bool { return comps[i].length > comps[j].length })
			comps = comps[:2]
			sort.Slice(comps, func(i, j int) bool { return comps[i].start < comps[j].start })
		}
		return classifyTwo(a0, comps[0], comps[1])
	}
}

func classifySingle(a0 arc.Arc, l0 float64, a1 arc.Arc, l1 float64, iv angleInterval) ArcArcConfig {
	if iv.length < angularEpsilon {
		return ArcArcConfig{Kind: ArcArcOneEndpoint, P0: pointAt(a0.C, a0.R, iv.start)}
	}
	if math.Abs(iv.length-l0) < angularEpsilon && math.Abs(iv.length-l1) < angularEpsilon {
		return ArcArcConfig{Kind: ArcArcFullOverlap, SubArc0: a0, SubArc1: a1}
	}
	return ArcArcConfig{Kind: ArcArcOneSubArc, SubArc0: subArcFromInterval(a0.C, a0.R, iv)}
}

func classifyTwo(a0 arc.Arc, iv0, iv1 angleInterval) ArcArcConfig {
	p0, p1 := iv0.length < angularEpsilon, iv1.length < angularEpsilon
	switch {
	case p0 && p1:
		return ArcArcConfig{
			Kind: ArcArcTwoEndpoints,
			P0:   pointAt(a0.C, a0.R, iv0.start),
			P1:   pointAt(a0.C, a0.R, iv1.start),
		}
	case p0:
		return ArcArcConfig{
			Kind:    ArcArcOnePointAndSubArc,
			P0:      pointAt(a0.C, a0.R, iv0.start),
			SubArc0: subArcFromInterval(a0.C, a0.R, iv1),
		}
	case p1:
		return ArcArcConfig{
			Kind:    ArcArcOnePointAndSubArc,
			P0:      pointAt(a0.C, a0.R, iv1.start),
			SubArc0: subArcFromInterval(a0.C, a0.R, iv0),
		}
	default:
		return ArcArcConfig{
			Kind:    ArcArcTwoSubArcs,
			SubArc0: subArcFromInterval(a0.C, a0.R, iv0),
			SubArc1: subArcFromInterval(a0.C, a0.R, iv1),
		}
	}
}
