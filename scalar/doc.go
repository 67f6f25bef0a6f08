// Package scalar provides the numerically robust floating-point building
// blocks shared by every other package in the kernel: Kahan/Thacher
// compensated products, ULP-based approximate equality, and the central
// tolerance constants used throughout geometric predicates.
//
// Every determinant, cross product, and dot product that feeds a sign
// decision elsewhere in this module routes through DiffOfProd or
// SumOfProd instead of the naive a*b-c*d / a*b+c*d forms, which suffer
// catastrophic cancellation on near-degenerate inputs.
package scalar
