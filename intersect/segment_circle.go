package intersect

import (
	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/segment"
)

// SegmentCircle intersects s with c by solving the line-circle quadratic
// in s's centered form (so the solved parameter is signed distance from
// the segment's midpoint) and filtering by the segment's half-length.
func SegmentCircle(s segment.Segment, c circle.Circle) LineCircleConfig {
	center, dir, extent := s.CenteredForm()
	if extent == 0 {
		return LineCircleConfig{Kind: NoIntersection}
	}
	lc := LineCircle(line.New(center, dir), c)
	return filterLineCircleByExtent(lc, extent)
}

func filterLineCircleByExtent(lc LineCircleConfig, extent float64) LineCircleConfig {
	switch lc.Kind {
	case NoIntersection:
		return lc
	case LineCircleOnePoint:
		if abs(lc.T0) <= extent {
			return lc
		}
		return LineCircleConfig{Kind: NoIntersection}
	case LineCircleTwoPoints:
		in0, in1 := abs(lc.T0) <= extent, abs(lc.T1) <= extent
		switch {
		case in0 && in1:
			return lc
		case in0:
			return LineCircleConfig{Kind: LineCircleOnePoint, P0: lc.P0, T0: lc.T0}
		case in1:
			return LineCircleConfig{Kind: LineCircleOnePoint, P0: lc.P1, T0: lc.T1}
		default:
			return LineCircleConfig{Kind: NoIntersection}
		}
	default:
		return LineCircleConfig{Kind: NoIntersection}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
