// Package line implements Line, an infinite line given by an origin point
// and a (not necessarily unit) direction vector.
package line
