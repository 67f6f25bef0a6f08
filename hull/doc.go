// Package hull computes convex hulls: Points runs gift-wrapping (Jarvis
// march) over a bare point set; Arcline computes the analogous hull of an
// arc-and-segment polygon, preserving outward-bulging arcs on the
// boundary and bridging the gaps between them with the external tangent
// constructions of package tangent.
//
// Points deliberately uses the naive Point.Perp turn test rather than the
// robust predicates package — a performance trade-off spec.md §9 calls
// out explicitly ("near-collinear hulls may vary by one or two collinear
// points"). Grounded on pointline_convex_hull in
// _examples/original_source/src/algo/convex_hull.rs.
//
// Arcline is grounded on the newer
// _examples/original_source/src/algo/convex_hull_arcs/mod.rs (spec.md §9
// notes this supersedes the older convex_hull_arcs.rs), adapted to this
// kernel's data model: candidate vertices are each arc's endpoints plus,
// for arcs classified as outward-bulging, the circle's cardinal extrema
// that lie on the arc; a point-set hull over that candidate set gives the
// hull's vertex order, and each hull edge is realized either as the
// original arc (when both its endpoints survive as adjacent hull
// vertices), an external tangent bridge between two outward arcs'
// circles, or a straight connecting segment.
package hull
