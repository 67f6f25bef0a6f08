package arc

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/predicates"
	"github.com/arcspline/geokernel/scalar"
)

// idCounter hands out non-unique, debug-only ids to every Arc built through
// New. Grounded on ID_COUNT: AtomicUsize in
// _examples/original_source/src/arc.rs; Go's atomic.Uint64 replaces the
// Rust AtomicUsize with Relaxed fetch_add.
var idCounter atomic.Uint64

// Arc is the counter-clockwise portion of the circle centered at C with
// radius R, running from A to B. R == math.Inf(1) denotes a line segment
// from A to B, in which case C is unused. Arc is otherwise a plain value
// type; Translate is the one method that mutates its receiver in place.
type Arc struct {
	A, B, C point.Point
	R       float64
	ID      uint64
}

// New returns the arc (a, b, c, r) with a fresh debug id. It does not
// validate or normalize its arguments; callers that build arcs from
// chord+bulge input should use FromBulge instead.
func New(a, b, c point.Point, r float64) Arc {
	return Arc{A: a, B: b, C: c, R: r, ID: idCounter.Add(1)}
}

// Line returns the arc from a to b with infinite radius, i.e. a straight
// line segment expressed in the Arc representation.
func Line(a, b point.Point) Arc {
	return New(a, b, point.New(math.Inf(1), math.Inf(1)), math.Inf(1))
}

func (a Arc) String() string {
	return fmt.Sprintf("[%s, %s, %s, %.20f]", a.A, a.B, a.C, a.R)
}

// Equal reports whether a and b describe the same arc, ignoring their
// debug ids. Grounded on Arc's hand-written PartialEq impl in
// _examples/original_source/src/arc.rs, which excludes id from equality.
func (a Arc) Equal(b Arc) bool {
	return a.A == b.A && a.B == b.B && a.C == b.C && a.R == b.R
}

// IsArc reports whether this is a genuine circular arc (finite radius).
func (a Arc) IsArc() bool {
	return !math.IsInf(a.R, 1)
}

// IsLine reports whether this arc represents a straight line segment
// (infinite radius).
func (a Arc) IsLine() bool {
	return math.IsInf(a.R, 1)
}

// Translate shifts a in place by the given vector. It is the sole
// exception to Arc's value-type immutability, matching
// Arc::translate(&mut self, ...) in the original source.
func (a *Arc) Translate(v point.Point) {
	a.A = a.A.Add(v)
	a.B = a.B.Add(v)
	if a.IsArc() {
		a.C = a.C.Add(v)
	}
}

// Reverse returns a new arc running from B to A instead of A to B, with
// the same center and radius. The id of the result is independent of a's.
func (a Arc) Reverse() Arc {
	return New(a.B, a.A, a.C, a.R)
}

// Contains reports whether p lies on the arc's side of the chord A-B, i.e.
// within the arc's angular span when p is already known to lie on the
// supporting circle or line. It is a cheap partial test, not a full
// on-arc membership predicate: it does not check that p is actually at
// distance R from C. Grounded on Arc::contains in
// _examples/original_source/src/arc.rs.
func (a Arc) Contains(p point.Point) bool {
	perp := predicates.Orient2D(coord(a.A), coord(p), coord(a.B))
	return perp >= 0
}

// containsOrder2D is the robust orientation of p relative to the directed
// line a->b, used by arc x arc intersection to classify candidate points
// without going through a specific arc's endpoints. Grounded on
// Arc::contains_order2d in the original source.
func containsOrder2D(a, b, p point.Point) float64 {
	return predicates.Orient2D(coord(a), coord(b), coord(p))
}

func coord(p point.Point) predicates.Coord {
	return predicates.Coord{X: p.X, Y: p.Y}
}

// Check reports whether a is a well-formed, non-degenerate arc: its radius
// must be positive, finite-or-infinite but never NaN or below the
// collapsed-radius threshold. A finite-radius arc's endpoints are not
// checked (coincident endpoints denote a full circle). A line
// (R == +Inf) is valid only if its endpoints are distinct.
//
// This diverges from arc_check in
// _examples/original_source/src/arc.rs, which flags any coincident
// endpoints as collapsed and has no notion of a full circle; this kernel's
// arc model (spec-level: "a == b with finite r denotes a full circle")
// treats coincident endpoints on a finite-radius arc as valid.
func Check(a Arc) error {
	if math.IsNaN(a.R) {
		return ErrCollapsedRadius
	}
	if a.IsLine() {
		if a.A.CloseEnough(a.B, scalar.CollapsedArcEpsilon) {
			return ErrCollapsedEnds
		}
		return nil
	}
	if a.R < scalar.CollapsedArcEpsilon {
		return ErrCollapsedRadius
	}
	return nil
}
