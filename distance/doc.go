// Package distance implements the kernel's pairwise minimum-distance
// predicates. Each predicate returns a non-negative distance together
// with a closest-point witness on each operand; predicates that can
// short-circuit to zero do so by consulting package intersect rather than
// reimplementing intersection logic.
package distance
