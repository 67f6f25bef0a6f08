// Package arc implements Arc, the kernel's central geometric primitive: the
// counter-clockwise portion of a circle between two endpoints, or — when
// its radius is +Inf — a plain line segment.
//
// All finite-radius arcs are CCW; this is a global invariant the rest of
// the kernel depends on. FromBulge is the only constructor that can
// receive a clockwise chord+bulge pair, and it normalizes by swapping
// endpoints and negating the bulge before building the arc, so a CW arc
// is never observable outside this package.
//
// Arc carries a non-unique, debug-only ID assigned from a package-level
// atomic counter. Equal and any other comparison of arcs elsewhere in the
// kernel must ignore it.
package arc
