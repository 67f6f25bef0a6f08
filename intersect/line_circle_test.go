package intersect

import (
	"testing"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestLineCircleTwoPoints(t *testing.T) {
	l := line.New(point.New(-2, 0), point.New(1, 0))
	c := circle.New(point.New(0, 0), 1)
	cfg := LineCircle(l, c)
	assert.Equal(t, LineCircleTwoPoints, cfg.Kind)
	assert.True(t, cfg.T0 <= cfg.T1)
	assert.InDelta(t, -1, cfg.P0.X, 1e-9)
	assert.InDelta(t, 1, cfg.P1.X, 1e-9)
}

func TestLineCircleTangent(t *testing.T) {
	l := line.New(point.New(-2, 1), point.New(1, 0))
	c := circle.New(point.New(0, 0), 1)
	cfg := LineCircle(l, c)
	assert.Equal(t, LineCircleOnePoint, cfg.Kind)
	assert.InDelta(t, 0, cfg.P0.X, 1e-9)
	assert.InDelta(t, 1, cfg.P0.Y, 1e-9)
}

func TestLineCircleNoIntersection(t *testing.T) {
	l := line.New(point.New(-2, 5), point.New(1, 0))
	c := circle.New(point.New(0, 0), 1)
	cfg := LineCircle(l, c)
	assert.Equal(t, NoIntersection, cfg.Kind)
}
