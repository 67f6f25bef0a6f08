// Package point implements Point, the 2D vector/position type used
// throughout the kernel: componentwise arithmetic, dot and perp products
// computed with Kahan-compensated multiplication, normalization, and the
// ULP/epsilon equality helpers every higher package relies on for
// tolerance-aware comparisons.
package point
