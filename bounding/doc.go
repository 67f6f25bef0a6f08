// Package bounding computes tight bounding shapes for a single arc: the
// minimal enclosing circle and the axis-aligned bounding rectangle.
//
// Both routines classify the arc first (line segment, full circle, minor
// arc, major arc) and then union a small candidate point set — the two
// endpoints plus whichever of the circle's four cardinal extrema fall
// within the arc's CCW angular span. Grounded on arc_bounding_circle and
// arc_bounding_rect in _examples/original_source/src/algo/bounding.rs.
package bounding
