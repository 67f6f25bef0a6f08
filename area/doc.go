// Package area computes signed enclosed area for a plain point polygon
// and for an arcline, the kernel's arc-and-segment polygon representation.
//
// Both use the shoelace formula as their line-segment term; arcline area
// additionally corrects each circular-arc element by its sector area minus
// the chord triangle, which is valid because every finite-radius arc in
// the kernel is CCW (spec §3, §4.6). Grounded on pointline_area and
// arcline_area in _examples/original_source/src/algo/area.rs.
package area
