// Package interval implements the closed interval [E0, E1] used by
// segment-parameter extents, bounding-rect projections, and the
// interval x interval intersection predicate.
package interval
