package circle

import (
	"testing"

	"github.com/arcspline/geokernel/point"
	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	c := New(point.New(1, 1), 2)
	assert.Equal(t,
		"[[1.00000000000000000000, 1.00000000000000000000], 2.00000000000000000000]",
		c.String())
}
