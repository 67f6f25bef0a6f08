package predicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrient2DSign(t *testing.T) {
	assert.Greater(t, Orient2D(Coord{0, 0}, Coord{1, 0}, Coord{0, 1}), 0.0, "CCW turn")
	assert.Less(t, Orient2D(Coord{0, 0}, Coord{0, 1}, Coord{1, 0}), 0.0, "CW turn")
	assert.Equal(t, 0.0, Orient2D(Coord{0, 0}, Coord{1, 1}, Coord{2, 2}), "collinear")
}

func TestOrient2DNearDegenerate(t *testing.T) {
	// Points that are collinear except for a last-bit perturbation: naive
	// float64 arithmetic is prone to flipping sign here. 0x1p-25 is one ulp
	// at 2e8; a smaller offset such as 1e-8 would round away entirely.
	a := Coord{0, 0}
	b := Coord{1e8, 1e8}
	c := Coord{2e8, 2e8 + 0x1p-25}
	got := Orient2D(a, b, c)
	assert.Greater(t, got, 0.0)
}

func TestInCircle(t *testing.T) {
	// Unit circle through (1,0), (0,1), (-1,0) counter-clockwise; origin is inside.
	a := Coord{1, 0}
	b := Coord{0, 1}
	c := Coord{-1, 0}
	assert.Greater(t, InCircle(a, b, c, Coord{0, 0}), 0.0, "origin inside")
	assert.Less(t, InCircle(a, b, c, Coord{10, 10}), 0.0, "far point outside")
	assert.Equal(t, 0.0, InCircle(a, b, c, Coord{0, -1}), "on circle")
}
