// Package predicates implements the two exact-sign geometric predicates the
// rest of the kernel builds on: Orient2D (sign of the signed area of a
// triangle) and InCircle (sign of whether a point lies inside, on, or
// outside the circle through three other points).
//
// Naive floating-point evaluation of either determinant is insufficient:
// near-collinear or near-cocircular inputs flip sign under rounding error,
// which silently corrupts every predicate built on top (orientation tests,
// arc containment, convex hull, bounding-circle containment). This package
// therefore evaluates both determinants twice — once with plain float64
// arithmetic, once (only when the fast result is too close to zero to trust)
// with exact big.Float arithmetic wide enough that rounding cannot change
// the sign. This is the adaptive-precision strategy of Shewchuk's robust
// predicates, grounded on the Rust `robust` crate referenced by
// `_examples/original_source/src/point.rs` ("use robust::{Coord, orient2d}");
// no third-party Go implementation of either predicate exists anywhere in
// the retrieval pack, so this package is the kernel's one
// standard-library-only component (see DESIGN.md).
package predicates
