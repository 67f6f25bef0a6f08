package distance

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
)

// PointArc returns the distance from p to its nearest point on arc a,
// together with that witness point. Lines (infinite radius) reduce to
// PointSegment against the chord A-B. For a finite-radius arc, the
// candidate nearest point on the full supporting circle is used when it
// falls within the arc's span; otherwise the nearer of the two endpoints
// is used.
func PointArc(p point.Point, a arc.Arc) (dist float64, closest point.Point) {
	if a.IsLine() {
		return PointSegment(p, segment.New(a.A, a.B))
	}

	dir, n := p.Sub(a.C).Normalize()
	if n == 0 {
		dir, _ = a.A.Sub(a.C).Normalize()
	}
	candidate := a.C.Add(dir.Scale(a.R))
	if a.Contains(candidate) {
		return p.Sub(candidate).Norm(), candidate
	}

	dA := p.Sub(a.A).Norm()
	dB := p.Sub(a.B).Norm()
	if dA <= dB {
		return dA, a.A
	}
	return dB, a.B
}
