package arcline

import (
	"fmt"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
)

// Arcline is an ordered sequence of arcs. Arc i+1 is expected to start
// where arc i ends; see Validate.
type Arcline []arc.Arc

// StatusKind enumerates the outcomes Validate can report.
type StatusKind int

const (
	// Empty: the arcline has no arcs.
	Empty StatusKind = iota
	// SingleArc: the arcline has exactly one arc; connectivity between
	// consecutive arcs is vacuously satisfied.
	SingleArc
	// Connected: every arc is individually valid and consecutive arcs
	// share an endpoint within tolerance.
	Connected
	// Disconnected: arcs[Index] and arcs[Index+1] do not share an
	// endpoint within tolerance.
	Disconnected
	// InvalidArc: arcs[Index] fails arc.Check on its own.
	InvalidArc
)

func (k StatusKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case SingleArc:
		return "SingleArc"
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	case InvalidArc:
		return "InvalidArc"
	default:
		return "Unknown"
	}
}

// Status is the result of Validate. Index is only meaningful for
// Disconnected and InvalidArc.
type Status struct {
	Kind  StatusKind
	Index int
}

func (s Status) String() string {
	switch s.Kind {
	case Disconnected, InvalidArc:
		return fmt.Sprintf("%s(%d)", s.Kind, s.Index)
	default:
		return s.Kind.String()
	}
}

// Validate checks every arc's own validity (arc.Check) and, for arclines of
// two or more arcs, that consecutive arcs are connected: arcs[i].B must
// equal arcs[i+1].A within scalar.GeometricEpsilon. It does not require the
// arcline to be closed; closure (arcs[n-1].B == arcs[0].A) is a property
// the caller checks separately when a closed polygon is expected.
func Validate(al Arcline) Status {
	if len(al) == 0 {
		return Status{Kind: Empty}
	}
	for i, a := range al {
		if err := arc.Check(a); err != nil {
			return Status{Kind: InvalidArc, Index: i}
		}
	}
	if len(al) == 1 {
		return Status{Kind: SingleArc}
	}
	for i := 0; i < len(al)-1; i++ {
		if !al[i].B.CloseEnough(al[i+1].A, scalar.GeometricEpsilon) {
			return Status{Kind: Disconnected, Index: i}
		}
	}
	return Status{Kind: Connected}
}

// IsClosed reports whether the last arc's endpoint connects back to the
// first arc's start within tolerance. An empty arcline is not closed.
func IsClosed(al Arcline) bool {
	if len(al) == 0 {
		return false
	}
	return al[len(al)-1].B.CloseEnough(al[0].A, scalar.GeometricEpsilon)
}

// Reverse returns the arcline traversed in the opposite direction: arc
// order is reversed, and each arc itself is reversed so the sequence
// remains connected (start-to-end) along the new direction of travel.
func Reverse(al Arcline) Arcline {
	out := make(Arcline, len(al))
	for i, a := range al {
		out[len(al)-1-i] = a.Reverse()
	}
	return out
}

// Translate returns a copy of al with every arc shifted by v.
func Translate(al Arcline, v point.Point) Arcline {
	out := make(Arcline, len(al))
	for i, a := range al {
		shifted := a
		shifted.Translate(v)
		out[i] = shifted
	}
	return out
}

// Scale returns a copy of al scaled by factor about center: every point p
// maps to center + (p - center) * factor. factor must be strictly
// positive; a non-positive factor would either collapse the arcline or
// reverse its orientation, breaking the CCW invariant every finite-radius
// arc in the kernel depends on, so Scale panics rather than silently
// producing an invalid arcline.
func Scale(al Arcline, factor float64, center point.Point) Arcline {
	if factor <= 0 {
		panic("arcline: Scale requires a strictly positive factor")
	}
	scalePoint := func(p point.Point) point.Point {
		return center.Add(p.Sub(center).Scale(factor))
	}
	out := make(Arcline, len(al))
	for i, a := range al {
		na := arc.New(scalePoint(a.A), scalePoint(a.B), a.C, a.R)
		if a.IsArc() {
			na.C = scalePoint(a.C)
			na.R = a.R * factor
		}
		out[i] = na
	}
	return out
}
