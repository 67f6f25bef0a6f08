package distance

import (
	"testing"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestPointArcWithinSpan(t *testing.T) {
	a := arc.New(point.New(1, 0), point.New(-1, 0), point.New(0, 0), 1)
	d, closest := PointArc(point.New(0, 3), a)
	assert.InDelta(t, 2, d, 1e-12)
	assert.InDelta(t, 0, closest.X, 1e-9)
	assert.InDelta(t, 1, closest.Y, 1e-9)
}

func TestPointArcOutsideSpanFallsBackToEndpoint(t *testing.T) {
	a := arc.New(point.New(1, 0), point.New(-1, 0), point.New(0, 0), 1)
	d, closest := PointArc(point.New(0, -3), a)
	expected := point.New(0, -3).Sub(point.New(1, 0)).Norm()
	assert.InDelta(t, expected, d, 1e-9)
	assert.Equal(t, point.New(1, 0), closest)
}

func TestPointArcLineReducesToSegment(t *testing.T) {
	a := arc.Line(point.New(0, 0), point.New(10, 0))
	d, closest := PointArc(point.New(5, 4), a)
	assert.InDelta(t, 4, d, 1e-12)
	assert.InDelta(t, 5, closest.X, 1e-12)
}
