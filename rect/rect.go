package rect

import (
	"fmt"
	"math"

	"github.com/arcspline/geokernel/point"
)

// Rect is an axis-aligned rectangle defined by its min corner P1 and max
// corner P2.
type Rect struct {
	P1, P2 point.Point
}

// New returns the rectangle with the given corners, in whatever order they
// are given; use Normalize to canonicalize min/max.
func New(p1, p2 point.Point) Rect {
	return Rect{P1: p1, P2: p2}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s, %s]", r.P1, r.P2)
}

// Normalize returns an equivalent Rect whose P1 is the true min corner and
// P2 the true max corner.
func (r Rect) Normalize() Rect {
	minX, maxX := r.P1.X, r.P2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := r.P1.Y, r.P2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{P1: point.New(minX, minY), P2: point.New(maxX, maxY)}
}

// Union returns the smallest rectangle containing both r and other. Both
// must already be normalized.
func Union(r, other Rect) Rect {
	return Rect{
		P1: point.New(math.Min(r.P1.X, other.P1.X), math.Min(r.P1.Y, other.P1.Y)),
		P2: point.New(math.Max(r.P2.X, other.P2.X), math.Max(r.P2.Y, other.P2.Y)),
	}
}

// Overlaps reports whether r and other (both normalized) share any point.
func Overlaps(r, other Rect) bool {
	return r.P1.X <= other.P2.X && r.P2.X >= other.P1.X &&
		r.P1.Y <= other.P2.Y && r.P2.Y >= other.P1.Y
}

// FromPoints returns the normalized bounding rectangle of the given points.
// Non-finite points are skipped; callers that must reject them entirely
// should filter before calling.
func FromPoints(pts []point.Point) Rect {
	var minX, minY, maxX, maxY float64
	first := true
	for _, p := range pts {
		if !p.IsFinite() {
			continue
		}
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			continue
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{P1: point.New(minX, minY), P2: point.New(maxX, maxY)}
}
