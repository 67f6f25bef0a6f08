// Package arcline implements Arcline, an ordered sequence of arc.Arc values
// forming a polyline or, when closed, a polygon boundary. Arclines add
// structural validation (connectivity between consecutive arcs) and the
// whole-sequence transforms reverse, scale, and translate on top of the
// arc package's per-arc operations.
package arcline
