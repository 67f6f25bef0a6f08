package distance

import (
	"testing"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
	"github.com/stretchr/testify/assert"
)

func TestSegmentCircleIntersectingIsZero(t *testing.T) {
	s := segment.New(point.New(-5, 0), point.New(5, 0))
	c := circle.New(point.New(0, 0), 2)
	d, _, _ := SegmentCircle(s, c)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestSegmentCirclePerpendicularFootWithinExtent(t *testing.T) {
	s := segment.New(point.New(-5, 5), point.New(5, 5))
	c := circle.New(point.New(0, 0), 2)
	d, onSeg, onCircle := SegmentCircle(s, c)
	assert.InDelta(t, 3, d, 1e-9)
	assert.InDelta(t, 0, onSeg.X, 1e-9)
	assert.InDelta(t, 5, onSeg.Y, 1e-9)
	assert.InDelta(t, 2, onCircle.Y, 1e-9)
}

func TestSegmentCircleFootOutsideExtentUsesEndpoint(t *testing.T) {
	s := segment.New(point.New(10, 5), point.New(20, 5))
	c := circle.New(point.New(0, 0), 2)
	d, onSeg, _ := SegmentCircle(s, c)
	assert.Equal(t, point.New(10, 5), onSeg)
	want := point.New(10, 5).Sub(point.New(0, 0)).Norm() - 2
	assert.InDelta(t, want, d, 1e-9)
}
