package rect

import (
	"testing"

	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	r := New(point.New(1, 1), point.New(0, 0)).Normalize()
	assert.Equal(t, point.New(0, 0), r.P1)
	assert.Equal(t, point.New(1, 1), r.P2)
}

func TestOverlaps(t *testing.T) {
	a := New(point.New(0, 0), point.New(2, 2))
	b := New(point.New(1, 1), point.New(3, 3))
	c := New(point.New(3, 3), point.New(4, 4))
	assert.True(t, Overlaps(a, b))
	assert.False(t, Overlaps(a, c))
}

func TestFromPoints(t *testing.T) {
	r := FromPoints([]point.Point{point.New(1, -1), point.New(-1, 1), point.New(0, 0)})
	assert.Equal(t, point.New(-1, -1), r.P1)
	assert.Equal(t, point.New(1, 1), r.P2)
}
