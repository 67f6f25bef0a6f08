// Package spatial provides a static, Hilbert-ordered index over
// axis-aligned bounding boxes: each box is tagged with a 2D Hilbert curve
// index computed from its centroid (normalized into the unit square) and
// stored in a github.com/google/btree ordered tree keyed by that index.
//
// Queries scan the tree in ascending Hilbert order and test every entry's
// AABB against the query box — an O(n) linear scan rather than a
// recursive descent, exactly as spec.md §4.8/§9 permits ("a tree-descent
// implementation is permitted provided the semantics of
// query_intersecting ... are preserved"; this kernel keeps the linear
// scan for cache-friendliness and uses the tree purely as a deterministic
// sorted container). Grounded on HilbertRTree in
// _examples/original_source/src/spatial/hilbert_rtree.rs, restructured
// around google/btree.BTreeG instead of a hand-rolled sorted Vec (the
// dependency pulled from the retrieval pack's mikenye/geom2d go.mod).
package spatial
