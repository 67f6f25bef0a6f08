package distance

import (
	"testing"

	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
	"github.com/stretchr/testify/assert"
)

func TestSegmentSegmentTouchingIsZero(t *testing.T) {
	s0 := segment.New(point.New(0, 0), point.New(2, 2))
	s1 := segment.New(point.New(2, 2), point.New(4, 0))
	d, p0, p1 := SegmentSegment(s0, s1)
	assert.InDelta(t, 0, d, 1e-9)
	assert.Equal(t, point.New(2, 2), p0)
	assert.Equal(t, point.New(2, 2), p1)
}

func TestSegmentSegmentParallelGap(t *testing.T) {
	s0 := segment.New(point.New(0, 0), point.New(10, 0))
	s1 := segment.New(point.New(0, 3), point.New(10, 3))
	d, _, _ := SegmentSegment(s0, s1)
	assert.InDelta(t, 3, d, 1e-9)
}
