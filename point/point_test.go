package point

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	v1 := New(5, 5)
	v2 := New(1, 2)
	assert.True(t, v1.Add(v2).AlmostEqual(New(6, 7), 10))
	assert.True(t, v1.Sub(v2).AlmostEqual(New(4, 3), 10))
	assert.True(t, v1.Scale(2).AlmostEqual(New(10, 10), 10))
	assert.True(t, v2.Div(2).AlmostEqual(New(0.5, 1), 10))
	assert.Equal(t, New(-1, -3), New(1, 3).Neg())
}

func TestNorm(t *testing.T) {
	p := New(1, 1)
	assert.Equal(t, math.Sqrt(2), p.Norm())
}

func TestNormalizeZero(t *testing.T) {
	n, mag := New(0, 0).Normalize()
	assert.Equal(t, Zero, n)
	assert.Equal(t, 0.0, mag)
}

func TestNormalizeUnit(t *testing.T) {
	n, mag := New(3, 4).Normalize()
	assert.InDelta(t, 5.0, mag, 1e-12)
	assert.True(t, n.AlmostEqual(New(0.6, 0.8), 10))
}

func TestDisplay(t *testing.T) {
	p := New(1, 2)
	assert.Equal(t, "[1.00000000000000000000, 2.00000000000000000000]", p.String())
}

func TestSortCollinear4(t *testing.T) {
	a, b, c, d := New(1, 1), New(3, 3), New(2, 2), New(4, 4)
	e, f, g, h := SortCollinear4(a, b, c, d)
	assert.Equal(t, a, e)
	assert.Equal(t, c, f)
	assert.Equal(t, b, g)
	assert.Equal(t, d, h)
}

func TestSortCollinear4Variant(t *testing.T) {
	a, b, c, d := New(1, 1), New(2, 2), New(4, 4), New(-1, -1)
	e, f, g, h := SortCollinear4(a, b, c, d)
	assert.Equal(t, c, e)
	assert.Equal(t, b, f)
	assert.Equal(t, a, g)
	assert.Equal(t, d, h)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, New(1, 2).IsFinite())
	assert.False(t, New(math.NaN(), 2).IsFinite())
	assert.False(t, New(math.Inf(1), 2).IsFinite())
}
