package distance

import (
	"testing"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestPointCircleOutside(t *testing.T) {
	c := circle.New(point.New(0, 0), 1)
	d, closest, eq := PointCircle(point.New(3, 0), c)
	assert.InDelta(t, 2, d, 1e-12)
	assert.InDelta(t, 1, closest.X, 1e-12)
	assert.False(t, eq)
}

func TestPointCircleInside(t *testing.T) {
	c := circle.New(point.New(0, 0), 2)
	d, closest, eq := PointCircle(point.New(0, 1), c)
	assert.InDelta(t, 1, d, 1e-12)
	assert.InDelta(t, 2, closest.Y, 1e-12)
	assert.False(t, eq)
}

func TestPointCircleAtCenter(t *testing.T) {
	c := circle.New(point.New(5, 5), 3)
	d, _, eq := PointCircle(point.New(5, 5), c)
	assert.InDelta(t, 3, d, 1e-12)
	assert.True(t, eq)
}
