package bounding

import (
	"math"
	"testing"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestArcCircleLineSegment(t *testing.T) {
	l := arc.Line(point.New(0, 0), point.New(3, 4))
	c := ArcCircle(l)
	assert.InDelta(t, 1.5, c.C.X, 1e-9)
	assert.InDelta(t, 2.0, c.C.Y, 1e-9)
	assert.InDelta(t, 2.5, c.R, 1e-9)
}

func TestArcCircleQuarterArc(t *testing.T) {
	a := arc.New(point.New(1, 0), point.New(0, 1), point.New(0, 0), 1)
	c := ArcCircle(a)
	assert.InDelta(t, math.Sqrt2/2, c.R, 1e-9)
	assert.True(t, a.A.Sub(c.C).Norm() <= c.R+1e-9)
	assert.True(t, a.B.Sub(c.C).Norm() <= c.R+1e-9)
}

func TestArcCircleSemicircleIsOwnCircle(t *testing.T) {
	a := arc.New(point.New(1, 0), point.New(-1, 0), point.New(0, 0), 1)
	c := ArcCircle(a)
	assert.InDelta(t, 0, c.C.X, 1e-9)
	assert.InDelta(t, 0, c.C.Y, 1e-9)
	assert.InDelta(t, 1, c.R, 1e-9)
}

func TestArcCircleFullCircle(t *testing.T) {
	se := point.New(2, 0)
	a := arc.New(se, se, point.New(0, 0), 2)
	c := ArcCircle(a)
	assert.InDelta(t, 2, c.R, 1e-9)
}

func TestArcRectLineSegment(t *testing.T) {
	l := arc.Line(point.New(1, 2), point.New(4, 6))
	r := ArcRect(l)
	assert.Equal(t, point.New(1, 2), r.P1)
	assert.Equal(t, point.New(4, 6), r.P2)
}

func TestArcRectQuarterArc(t *testing.T) {
	a := arc.New(point.New(1, 0), point.New(0, 1), point.New(0, 0), 1)
	r := ArcRect(a)
	assert.InDelta(t, 0, r.P1.X, 1e-9)
	assert.InDelta(t, 0, r.P1.Y, 1e-9)
	assert.InDelta(t, 1, r.P2.X, 1e-9)
	assert.InDelta(t, 1, r.P2.Y, 1e-9)
}

func TestArcRectFullCircle(t *testing.T) {
	center := point.New(2, 3)
	se := point.New(center.X+1.5, center.Y)
	a := arc.New(se, se, center, 1.5)
	r := ArcRect(a)
	assert.InDelta(t, center.X-1.5, r.P1.X, 1e-9)
	assert.InDelta(t, center.Y-1.5, r.P1.Y, 1e-9)
	assert.InDelta(t, center.X+1.5, r.P2.X, 1e-9)
	assert.InDelta(t, center.Y+1.5, r.P2.Y, 1e-9)
}

func TestArcRectLargeArcIncludesExtremes(t *testing.T) {
	a := arc.New(point.New(1, 0), point.New(-0.5, -0.866), point.New(0, 0), 1)
	r := ArcRect(a)
	assert.InDelta(t, -1, r.P1.X, 1e-9)
	assert.InDelta(t, 1, r.P2.Y, 1e-9)
}
