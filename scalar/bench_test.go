package scalar

import "testing"

func BenchmarkDiffOfProd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DiffOfProd(1.5, 2.5, 3.5, 4.5)
	}
}

func BenchmarkAlmostEqualAsInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = AlmostEqualAsInt(1.0, 1.0000000001, 10)
	}
}
