package intersect

import (
	"testing"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/segment"
	"github.com/stretchr/testify/assert"
)

func TestSegmentCircleTwoPoints(t *testing.T) {
	s := segment.New(point.New(-2, 0), point.New(2, 0))
	c := circle.New(point.New(0, 0), 1)
	cfg := SegmentCircle(s, c)
	assert.Equal(t, LineCircleTwoPoints, cfg.Kind)
}

func TestSegmentCircleClippedToOnePoint(t *testing.T) {
	s := segment.New(point.New(-2, 0), point.New(0, 0))
	c := circle.New(point.New(0, 0), 1)
	cfg := SegmentCircle(s, c)
	assert.Equal(t, LineCircleOnePoint, cfg.Kind)
	assert.InDelta(t, -1, cfg.P0.X, 1e-9)
}

func TestSegmentCircleNoReach(t *testing.T) {
	s := segment.New(point.New(-2, 0), point.New(-1.5, 0))
	c := circle.New(point.New(0, 0), 1)
	cfg := SegmentCircle(s, c)
	assert.Equal(t, NoIntersection, cfg.Kind)
}
