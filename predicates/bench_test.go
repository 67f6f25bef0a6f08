package predicates

import "testing"

func BenchmarkOrient2DFastPath(b *testing.B) {
	a := Coord{X: 0, Y: 0}
	c := Coord{X: 1, Y: 1}
	d := Coord{X: 5, Y: 3}
	for i := 0; i < b.N; i++ {
		_ = Orient2D(a, c, d)
	}
}

func BenchmarkOrient2DExactPath(b *testing.B) {
	// Exactly collinear once 2 + 1e-18 rounds to 2: the fast path's error
	// bound rejects the zero determinant and falls through to
	// exactOrient2D on every call.
	a := Coord{X: 0, Y: 0}
	c := Coord{X: 1, Y: 1}
	d := Coord{X: 2, Y: 2 + 1e-18}
	for i := 0; i < b.N; i++ {
		_ = Orient2D(a, c, d)
	}
}

func BenchmarkInCircleFastPath(b *testing.B) {
	a := Coord{X: 0, Y: 0}
	c := Coord{X: 1, Y: 0}
	p := Coord{X: 0, Y: 1}
	d := Coord{X: 0.2, Y: 0.2}
	for i := 0; i < b.N; i++ {
		_ = InCircle(a, c, p, d)
	}
}
