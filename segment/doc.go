// Package segment implements Segment, a directed line segment between two
// endpoints, including its centered (center, unit direction, half-length)
// form used by the distance and intersection predicates.
package segment
