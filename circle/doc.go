// Package circle implements Circle, a center point and non-negative,
// finite radius.
package circle
