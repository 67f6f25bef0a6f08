// Package geokernel is a robust, total 2D computational-geometry kernel:
// points, lines, segments, circles, and CCW-oriented circular arcs, with
// exact predicates, intersection and distance queries, convex hulls,
// bounding shapes, and arcline self-intersection detection.
//
// Every geometric predicate in this module is total: it returns a typed
// result describing the configuration (disjoint, tangent, overlapping,
// degenerate, and so on) rather than panicking or silently returning NaN.
// Exactness where it matters is bought with the predicates package's
// adaptive-precision orient2d/incircle tests; everything built on top of
// them — intersect, distance, bounding, hull, spatial, selfintersect —
// inherits that robustness without repeating it.
//
// Packages are flat, one per component, mirroring lvlath's own layout
// rather than a monolithic package:
//
//	point, line, segment, circle, arc, arcline — the primitive types and
//	    their own operations (predicates, bulge fitting, translation,
//	    reversal, validity checks)
//	intersect, distance, bounding, area, tangent, hull — pairwise and
//	    aggregate geometric queries over the core types
//	spatial, selfintersect — Hilbert-indexed candidate pruning and the
//	    arcline self-intersection engine built on it
//	scalar, predicates, interval, rect — shared numeric and geometric
//	    plumbing every other package depends on
package geokernel
