package area

import (
	"math"
	"testing"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/arcline"
	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestPointlineAreaSquareCCW(t *testing.T) {
	square := []point.Point{
		point.New(0, 0),
		point.New(1, 0),
		point.New(1, 1),
		point.New(0, 1),
	}
	assert.InDelta(t, 1.0, Pointline(square), 1e-12)
}

func TestPointlineAreaReverseIsNegative(t *testing.T) {
	square := []point.Point{
		point.New(0, 0),
		point.New(1, 0),
		point.New(1, 1),
		point.New(0, 1),
	}
	reversed := make([]point.Point, len(square))
	for i, p := range square {
		reversed[len(square)-1-i] = p
	}
	assert.InDelta(t, -1.0, Pointline(reversed), 1e-12)
}

func TestPointlineAreaFewerThanThreePoints(t *testing.T) {
	assert.Equal(t, 0.0, Pointline([]point.Point{point.New(0, 0), point.New(1, 1)}))
}

func TestArclineAreaSquareOfSegments(t *testing.T) {
	al := arcline.Arcline{
		arc.Line(point.New(0, 0), point.New(1, 0)),
		arc.Line(point.New(1, 0), point.New(1, 1)),
		arc.Line(point.New(1, 1), point.New(0, 1)),
		arc.Line(point.New(0, 1), point.New(0, 0)),
	}
	assert.InDelta(t, 1.0, Arcline(al), 1e-10)
}

func TestArclineAreaFullCircle(t *testing.T) {
	center := point.New(0, 0)
	radius := 1.0
	start := point.New(1, 0)
	al := arcline.Arcline{arc.New(start, start, center, radius)}
	assert.InDelta(t, math.Pi*radius*radius, Arcline(al), 1e-9)
}

func TestArclineAreaEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Arcline(nil))
}
