// Package selfintersect implements the arcline self-intersection engine:
// a conservative AABB per arc (circle bounds for a true arc, endpoint
// rectangle for a line segment), indexed by package spatial, then pairwise
// checked with intersect.IsReallyIntersectingArcArc. Adjacent arcs are not
// exempted — they may legitimately cross beyond their shared endpoint;
// only mere-touching configurations are excluded, by
// IsReallyIntersectingArcArc itself.
//
// Grounded on arcline_has_self_intersection / arcline_self_intersections in
// _examples/original_source/src/algo/self_intersect.rs.
//
// AABB padding is tunable via WithAABBPadding, a functional option over a
// private config struct rather than a public struct of knobs.
package selfintersect
