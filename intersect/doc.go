// Package intersect implements the kernel's pairwise intersection
// predicates. Every predicate is a total function: it never panics and
// never returns NaN-bearing coordinates, instead enumerating the possible
// geometric configurations (no intersection, one point, two points,
// parallel/coincident, tangency, cocircular overlap, ...) as a tagged
// Config value the caller switches on.
//
// Predicates build on package predicates (orient2d) for exact sign
// decisions and on package scalar for Kahan-compensated arithmetic and
// tolerance constants; they never use naive floating-point subtraction
// where a compensated form is available.
package intersect
