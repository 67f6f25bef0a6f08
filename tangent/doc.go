// Package tangent constructs external tangent lines without trigonometry:
// the two tangent lines from an external point to a circle, and the two
// external tangent lines between a pair of circles.
//
// Both constructions follow spec.md §4.9's closed-form derivations (foot
// of perpendicular, homothety center) rather than
// _examples/original_source/src/algo/tangent.rs's approximate
// line-segment fallback, since the spec's formulas are the exact
// construction and the original's tangent_arc_to_arc degrades to a plain
// connecting segment in several branches. Degenerate inputs (point inside
// or on the circle, concentric circles, non-positive radius) report no
// result rather than an error, matching spec §4.9's "reject ... by
// returning no result."
package tangent
