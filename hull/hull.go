package hull

import (
	"github.com/arcspline/geokernel/point"
)

// Points computes the convex hull of a point set via Jarvis march
// (gift wrapping). Non-finite points are dropped and exact duplicates are
// collapsed before wrapping. Collinear ties favor the farther point, so
// intermediate points on a straight hull edge are skipped.
//
// Fewer than three surviving points are returned unchanged (no degenerate
// hull is constructed for a point or a segment).
func Points(points []point.Point) []point.Point {
	pts := dedupeFinite(points)
	if len(pts) < 3 {
		return pts
	}

	start := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[start].X || (pts[i].X == pts[start].X && pts[i].Y < pts[start].Y) {
			start = i
		}
	}

	var hull []point.Point
	current := start
	for {
		hull = append(hull, pts[current])
		next := (current + 1) % len(pts)
		for i := range pts {
			if i == current {
				continue
			}
			cross := pts[next].Sub(pts[current]).Perp(pts[i].Sub(pts[current]))
			switch {
			case cross < 0:
				next = i
			case cross == 0:
				if pts[i].Sub(pts[current]).Norm() > pts[next].Sub(pts[current]).Norm() {
					next = i
				}
			}
		}
		current = next
		if current == start {
			break
		}
		if len(hull) > len(pts) {
			// Degenerate configuration (e.g. all points collinear): bail
			// out rather than loop forever.
			break
		}
	}
	return hull
}

func dedupeFinite(points []point.Point) []point.Point {
	seen := make(map[point.Point]struct{}, len(points))
	out := make([]point.Point, 0, len(points))
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
