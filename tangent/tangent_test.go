package tangent

import (
	"math"
	"testing"

	"github.com/arcspline/geokernel/circle"
	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestPointToCircleRightAngle(t *testing.T) {
	c := circle.New(point.New(0, 0), 1)
	p := point.New(3, 0)
	t1, t2, ok := PointToCircle(p, c)
	assert.True(t, ok)

	assertTangentRightAngle(t, p, c, t1)
	assertTangentRightAngle(t, p, c, t2)
}

func assertTangentRightAngle(t *testing.T, p point.Point, c circle.Circle, tp point.Point) {
	t.Helper()
	assert.InDelta(t, c.R, tp.Sub(c.C).Norm(), 1e-9)
	ct := tp.Sub(c.C)
	tpP := p.Sub(tp)
	assert.InDelta(t, 0, ct.Dot(tpP), 1e-9)
}

func TestPointToCircleInsideRejected(t *testing.T) {
	c := circle.New(point.New(0, 0), 5)
	_, _, ok := PointToCircle(point.New(1, 0), c)
	assert.False(t, ok)
}

func TestCircleCircleExternalEqualRadii(t *testing.T) {
	c1 := circle.New(point.New(0, 0), 1)
	c2 := circle.New(point.New(5, 0), 1)
	a1, a2, b1, b2, ok := CircleCircleExternal(c1, c2)
	assert.True(t, ok)
	assert.InDelta(t, 1, a1.Sub(c1.C).Norm(), 1e-9)
	assert.InDelta(t, 1, a2.Sub(c2.C).Norm(), 1e-9)
	assert.InDelta(t, a1.Y, a2.Y, 1e-9)
	assert.InDelta(t, b1.Y, b2.Y, 1e-9)
	assert.True(t, math.Abs(a1.Y-b1.Y) > 1)
}

func TestCircleCircleExternalUnequalRadii(t *testing.T) {
	c1 := circle.New(point.New(0, 0), 2)
	c2 := circle.New(point.New(10, 0), 1)
	a1, a2, b1, b2, ok := CircleCircleExternal(c1, c2)
	assert.True(t, ok)

	assert.InDelta(t, 2, a1.Sub(c1.C).Norm(), 1e-9)
	assert.InDelta(t, 1, a2.Sub(c2.C).Norm(), 1e-9)
	assert.InDelta(t, 2, b1.Sub(c1.C).Norm(), 1e-9)
	assert.InDelta(t, 1, b2.Sub(c2.C).Norm(), 1e-9)

	lineDir, _ := a2.Sub(a1).Normalize()
	r1 := a1.Sub(c1.C)
	assert.InDelta(t, 0, r1.Dot(lineDir), 1e-9)
	r2 := a2.Sub(c2.C)
	assert.InDelta(t, 0, r2.Dot(lineDir), 1e-9)
}

func TestCircleCircleExternalOneInsideOther(t *testing.T) {
	c1 := circle.New(point.New(0, 0), 5)
	c2 := circle.New(point.New(1, 0), 1)
	_, _, _, _, ok := CircleCircleExternal(c1, c2)
	assert.False(t, ok)
}

func TestCircleCircleExternalConcentric(t *testing.T) {
	c1 := circle.New(point.New(0, 0), 1)
	c2 := circle.New(point.New(0, 0), 2)
	_, _, _, _, ok := CircleCircleExternal(c1, c2)
	assert.False(t, ok)
}
