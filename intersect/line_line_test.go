package intersect

import (
	"testing"

	"github.com/arcspline/geokernel/line"
	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestLineLineCrossing(t *testing.T) {
	l0 := line.New(point.New(0, 0), point.New(1, 0))
	l1 := line.New(point.New(0, -1), point.New(0, 1))
	cfg := LineLine(l0, l1)
	assert.Equal(t, OnePoint, cfg.Kind)
	assert.InDelta(t, 0, cfg.P.X, 1e-9)
	assert.InDelta(t, 0, cfg.P.Y, 1e-9)
}

func TestLineLineParallelDistinct(t *testing.T) {
	l0 := line.New(point.New(0, 0), point.New(1, 0))
	l1 := line.New(point.New(0, 1), point.New(1, 0))
	cfg := LineLine(l0, l1)
	assert.Equal(t, ParallelDistinct, cfg.Kind)
}

func TestLineLineParallelCoincident(t *testing.T) {
	l0 := line.New(point.New(0, 0), point.New(1, 0))
	l1 := line.New(point.New(5, 0), point.New(-2, 0))
	cfg := LineLine(l0, l1)
	assert.Equal(t, ParallelCoincident, cfg.Kind)
}

func TestLineLineSelfIsParallelCoincident(t *testing.T) {
	s := point.New(1, 2)
	dir := point.New(3, -1)
	l := line.New(s, dir)
	cfg := LineLine(l, l)
	assert.Equal(t, ParallelCoincident, cfg.Kind)
}
