package selfintersect

import (
	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/arcline"
	"github.com/arcspline/geokernel/intersect"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/spatial"
)

// Hit records one self-intersection: the indices of the two arcs involved
// (i < j) and the point where they cross.
type Hit struct {
	I, J int
	P    point.Point
}

// config holds the tunable constants for the self-intersection scan,
// set through Option values passed to HasSelfIntersection/SelfIntersections.
// Functional options over a private config struct, rather than a public
// struct of knobs.
type config struct {
	padding float64
}

// Option configures the AABB scan used by HasSelfIntersection and
// SelfIntersections.
type Option func(*config)

// WithAABBPadding grows every arc's conservative bounding box by the given
// margin before indexing it. A positive padding trades a few extra
// (and always correctly rejected) candidate pairs for tolerance against
// floating-point error at a box's exact edge.
func WithAABBPadding(margin float64) Option {
	return func(c *config) { c.padding = margin }
}

func resolve(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// HasSelfIntersection reports whether any two arcs of al genuinely
// intersect (a proper crossing or overlap, not a mere shared-endpoint
// touch). It short-circuits on the first hit found while scanning the
// Hilbert-ordered candidate set.
func HasSelfIntersection(al arcline.Arcline, opts ...Option) bool {
	n := len(al)
	if n < 2 {
		return false
	}
	c := resolve(opts)
	boxes := arcBoxes(al, c.padding)
	idx := spatial.Build(boxes)
	for i := 0; i < n; i++ {
		for _, j := range idx.QueryIntersecting(boxes[i]) {
			if j <= i {
				continue
			}
			if ok, _ := intersect.IsReallyIntersectingArcArc(al[i], al[j]); ok {
				return true
			}
		}
	}
	return false
}

// SelfIntersections returns every self-intersection in al as a (i, j,
// point) triple, i < j, built from the same Hilbert-indexed candidate
// scan as HasSelfIntersection.
func SelfIntersections(al arcline.Arcline, opts ...Option) []Hit {
	n := len(al)
	if n < 2 {
		return nil
	}
	c := resolve(opts)
	boxes := arcBoxes(al, c.padding)
	idx := spatial.Build(boxes)

	var hits []Hit
	for i := 0; i < n; i++ {
		for _, j := range idx.QueryIntersecting(boxes[i]) {
			if j <= i {
				continue
			}
			if ok, p := intersect.IsReallyIntersectingArcArc(al[i], al[j]); ok {
				hits = append(hits, Hit{I: i, J: j, P: p})
			}
		}
	}
	return hits
}

// arcBoxes computes a conservative AABB per arc: the endpoint rectangle
// for a line segment, or the full circle's AABB for a genuine arc,
// expanded by padding on every side. This deliberately skips angular-span
// analysis (spec.md §4.8 step 1) in favor of a cheap, always-correct
// over-approximation.
func arcBoxes(al arcline.Arcline, padding float64) []spatial.Box {
	boxes := make([]spatial.Box, len(al))
	for i, a := range al {
		boxes[i] = arcBox(a, i, padding)
	}
	return boxes
}

func arcBox(a arc.Arc, index int, padding float64) spatial.Box {
	if a.IsLine() {
		minX, maxX := minmax(a.A.X, a.B.X)
		minY, maxY := minmax(a.A.Y, a.B.Y)
		return spatial.Box{
			MinX: minX - padding, MinY: minY - padding,
			MaxX: maxX + padding, MaxY: maxY + padding,
			Index: index,
		}
	}
	return spatial.Box{
		MinX: a.C.X - a.R - padding, MinY: a.C.Y - a.R - padding,
		MaxX: a.C.X + a.R + padding, MaxY: a.C.Y + a.R + padding,
		Index: index,
	}
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
