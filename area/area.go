package area

import (
	"math"

	"github.com/arcspline/geokernel/arc"
	"github.com/arcspline/geokernel/arcline"
	"github.com/arcspline/geokernel/point"
	"github.com/arcspline/geokernel/scalar"
)

// Pointline computes the signed area of the polygon with the given
// vertices in order, via the shoelace formula. Positive for a
// counter-clockwise polygon, negative for clockwise. Fewer than three
// points enclose no area.
func Pointline(points []point.Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var total float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += points[i].Perp(points[j])
	}
	return total / 2
}

// Arcline computes the signed area enclosed by al, treated as a closed
// boundary. Each line-segment arc contributes its shoelace term; each
// circular arc contributes the same line term plus a curvature
// correction (sector area minus chord-triangle area) using the arc's CCW
// sweep angle, with a full circle (a == b) treated as a 2*pi sweep.
func Arcline(al arcline.Arcline) float64 {
	var total float64
	for _, a := range al {
		if a.IsLine() {
			total += a.A.Perp(a.B) / 2
			continue
		}
		total += arcContribution(a)
	}
	return total
}

func arcContribution(a arc.Arc) float64 {
	startVec := a.A.Sub(a.C)
	endVec := a.B.Sub(a.C)

	startAngle := math.Atan2(startVec.Y, startVec.X)
	endAngle := math.Atan2(endVec.Y, endVec.X)

	sweep := endAngle - startAngle
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	if a.A.CloseEnough(a.B, scalar.CollapsedArcEpsilon) {
		sweep = 2 * math.Pi
	}

	lineTerm := a.A.Perp(a.B) / 2
	sector := 0.5 * a.R * a.R * sweep
	triangle := 0.5 * (a.C.X*(a.A.Y-a.B.Y) + a.A.X*(a.B.Y-a.C.Y) + a.B.X*(a.C.Y-a.A.Y))

	return lineTerm + sector - triangle
}
