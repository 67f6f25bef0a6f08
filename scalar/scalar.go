package scalar

import "math"

// twoComplement64 is the bit pattern used to map a negative IEEE-754 double's
// bit representation into a lexicographically ordered signed integer.
const twoComplement64 int64 = math.MinInt64

// DiffOfProd returns a*b - c*d using the Kahan/Thacher technique: compute the
// product c*d, a residual correction via FMA, and fold the correction back
// into the FMA-computed a*b-c*d. This suppresses the catastrophic
// cancellation that a naive a*b-c*d suffers when a*b and c*d are close in
// magnitude and opposite in sign error.
//
// Every perp/cross/determinant in this kernel that feeds a sign decision
// must use this instead of the naive form.
func DiffOfProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(-c, d, cd)
	dop := math.FMA(a, b, -cd)
	return dop + err
}

// SumOfProd returns a*b + c*d with the same Kahan/Thacher compensation as
// DiffOfProd.
func SumOfProd(a, b, c, d float64) float64 {
	cd := c * d
	err := math.FMA(c, d, -cd)
	sop := math.FMA(a, b, cd)
	return sop + err
}

// AlmostEqualAsInt compares two finite float64 values for approximate
// equality by mapping each to a lexicographically ordered signed integer and
// comparing the integer gap against ulps. Positive and negative zero compare
// equal. Both inputs must be finite; NaN or infinite input never compares
// equal to anything, including itself.
func AlmostEqualAsInt(a, b float64, ulps int64) bool {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	ai := int64(math.Float64bits(a))
	bi := int64(math.Float64bits(b))

	if ai < 0 {
		ai = twoComplement64 - ai
	}
	if bi < 0 {
		bi = twoComplement64 - bi
	}

	// The mapped range spans nearly all of int64 on both ends, so a plain
	// int64 subtraction can overflow when a and b have very different
	// magnitudes or signs. Such inputs are never within a small ulps
	// tolerance anyway, so the gap is computed in float64: exact for any
	// difference small enough to matter, and merely "very large" (and
	// therefore correctly rejected) otherwise.
	diff := float64(ai) - float64(bi)
	if diff < 0 {
		diff = -diff
	}

	return diff <= float64(ulps)
}

// CloseEnough reports whether |a-b| <= eps. Both inputs must be finite for
// the comparison to succeed: NaN or infinite inputs are never "close".
func CloseEnough(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= eps
}

// PerturbUlps nudges f by c representable steps. Intended for test inputs
// that need to probe ULP-boundary behavior, not for production code paths.
func PerturbUlps(f float64, c int64) float64 {
	if f == 0 && c == -1 {
		return math.Copysign(0, -1)
	}
	bits := int64(math.Float64bits(f))
	bits += c
	return math.Float64frombits(uint64(bits))
}
