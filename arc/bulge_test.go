package arc

import (
	"testing"

	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestFromBulgePositive(t *testing.T) {
	a := FromBulge(point.New(100, 100), point.New(200, 200), 0.5)
	assert.True(t, a.Equal(New(
		point.New(100, 100),
		point.New(200, 200),
		point.New(112.5, 187.5),
		88.38834764831844,
	)))
}

func TestFromBulgeGreaterThanOne(t *testing.T) {
	a := FromBulge(point.New(100, 100), point.New(200, 200), 1.5)
	assert.True(t, a.Equal(New(
		point.New(100, 100),
		point.New(200, 200),
		point.New(170.83333333333334, 129.16666666666666),
		76.60323462854265,
	)))
}

func TestFromBulgeNegativeSwapsEndpoints(t *testing.T) {
	// A negative bulge on (p1, p2) produces the CCW arc that a positive
	// bulge on (p2, p1) would, per arc_circle_parametrization's endpoint
	// swap-and-negate normalization.
	positive := FromBulge(point.New(200, 200), point.New(100, 100), 0.5)
	negative := FromBulge(point.New(100, 100), point.New(200, 200), -0.5)
	assert.True(t, positive.Equal(negative))
}

func TestFromBulgeZeroIsLine(t *testing.T) {
	a := FromBulge(point.New(1, 0), point.New(2, 1), 0.0)
	assert.True(t, a.IsLine())
}

func TestFromBulgeTinyIsLine(t *testing.T) {
	a := FromBulge(point.New(1, 0), point.New(2, 1), 1e-9)
	assert.True(t, a.IsLine())
}

func TestFromBulgeCoincidentPointsIsLine(t *testing.T) {
	a := FromBulge(point.New(2, 1), point.New(2, 1), 1.0)
	assert.True(t, a.IsLine())
}

func TestBulgeOfRoundTrips(t *testing.T) {
	cases := []float64{0.5, 1.5, 3.3, 0.01, 0.99, 2.0}
	p1, p2 := point.New(1, 2), point.New(3, 4)
	for _, g := range cases {
		a := FromBulge(p1, p2, g)
		got := BulgeOf(a)
		assert.InDelta(t, g, got, 1e-9, "bulge %v", g)
	}
}

func TestBulgeOfNegativeRoundTripsToPositiveEquivalent(t *testing.T) {
	// FromBulge normalizes negative bulge into the CCW arc with swapped
	// endpoints, so BulgeOf on the result recovers the positive magnitude,
	// not the original negative input.
	a := FromBulge(point.New(1, 2), point.New(3, 4), -0.5)
	assert.InDelta(t, 0.5, BulgeOf(a), 1e-9)
}

func TestBulgeOfLineIsZero(t *testing.T) {
	a := Line(point.New(1, 1), point.New(4, 4))
	assert.Equal(t, 0.0, BulgeOf(a))
}

func TestFromBulgeLineNamedCase(t *testing.T) {
	a := FromBulge(point.New(100, 100), point.New(300, 100), 0.0)
	assert.True(t, a.IsLine())
	assert.Equal(t, point.New(100, 100), a.A)
	assert.Equal(t, point.New(300, 100), a.B)
}
