package intersect

import (
	"testing"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
	"github.com/stretchr/testify/assert"
)

func TestSegmentArcTouchingSharedEndpoint(t *testing.T) {
	s := segment.New(point.New(1, 0), point.New(1, -5))
	a := arc.New(point.New(1, 0), point.New(0, 1), point.New(0, 0), 1)
	cfg := SegmentArc(s, a)
	assert.Equal(t, LineCircleOnePoint, cfg.Kind)
	assert.True(t, cfg.Touching0)
}

func TestSegmentArcProperCrossingNotTouching(t *testing.T) {
	s := segment.New(point.New(0.5, -2), point.New(0.5, 2))
	a := arc.New(point.New(1, 0), point.New(-1, 0), point.New(0, 0), 1)
	cfg := SegmentArc(s, a)
	assert.Equal(t, LineCircleOnePoint, cfg.Kind)
	assert.False(t, cfg.Touching0)
}
