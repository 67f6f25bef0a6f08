// Package rect implements Rect, an axis-aligned bounding rectangle defined
// by its min and max corners, used by bounding-shape and spatial-index
// computations.
package rect
