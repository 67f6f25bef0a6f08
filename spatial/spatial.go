package spatial

import (
	"math"

	"github.com/google/btree"
)

// hilbertOrder is the Hilbert curve order the index operates at: a
// 65536x65536 grid over the normalized unit square, matching spec.md
// §4.8's "Hilbert index at order 16".
const hilbertOrder = 16

const hilbertSide = 1 << hilbertOrder

// Box is an axis-aligned bounding box tagged with the index of whatever
// external item (e.g. an arc within an arcline) it bounds.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
	Index                  int
}

// Overlaps reports whether b and o share any point.
func (b Box) Overlaps(o Box) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

type hilbertEntry struct {
	hilbert uint64
	box     Box
}

func lessEntry(a, b hilbertEntry) bool {
	if a.hilbert != b.hilbert {
		return a.hilbert < b.hilbert
	}
	return a.box.Index < b.box.Index
}

// Index is a static Hilbert-ordered AABB index. Build it once from a
// complete set of boxes; it does not support incremental insertion.
type Index struct {
	tree *btree.BTreeG[hilbertEntry]
}

// btreeDegree is an arbitrary node fan-out; this index is built once and
// queried read-only, so tree shape has no observable effect beyond
// constant-factor performance.
const btreeDegree = 32

// Build constructs a Hilbert-ordered index over boxes. Each box's
// centroid is normalized into the unit square spanned by the centroids of
// the whole input set before its Hilbert index is computed, per spec.md
// §4.8 step 2. An empty input yields an empty, queryable index.
func Build(boxes []Box) *Index {
	idx := &Index{tree: btree.NewG(btreeDegree, lessEntry)}
	if len(boxes) == 0 {
		return idx
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, b := range boxes {
		cx, cy := centroid(b)
		minX, maxX = math.Min(minX, cx), math.Max(maxX, cx)
		minY, maxY = math.Min(minY, cy), math.Max(maxY, cy)
	}
	spanX, spanY := maxX-minX, maxY-minY

	for _, b := range boxes {
		cx, cy := centroid(b)
		u := normalize(cx, minX, spanX)
		v := normalize(cy, minY, spanY)
		idx.tree.ReplaceOrInsert(hilbertEntry{hilbert: hilbertIndex(u, v), box: b})
	}
	return idx
}

func centroid(b Box) (float64, float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

func normalize(v, min, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return (v - min) / span
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func hilbertIndex(u, v float64) uint64 {
	x := uint64(clamp01(u) * float64(hilbertSide-1))
	y := uint64(clamp01(v) * float64(hilbertSide-1))
	return xy2d(hilbertOrder, x, y)
}

// xy2d converts grid coordinates (x, y), each in [0, 2^order), to their
// distance along the order-level Hilbert curve.
func xy2d(order uint, x, y uint64) uint64 {
	var d uint64
	for s := uint64(1) << (order - 1); s > 0; s >>= 1 {
		var rx, ry uint64
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)

		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// QueryIntersecting returns the Index of every box overlapping q, scanning
// the tree in ascending Hilbert order.
func (idx *Index) QueryIntersecting(q Box) []int {
	var out []int
	idx.tree.Ascend(func(e hilbertEntry) bool {
		if e.box.Overlaps(q) {
			out = append(out, e.box.Index)
		}
		return true
	})
	return out
}

// Len returns the number of boxes in the index.
func (idx *Index) Len() int {
	return idx.tree.Len()
}
