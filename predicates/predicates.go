package predicates

import "math/big"

// Coord is the minimal 2D coordinate pair this package operates on. It
// mirrors the `robust::Coord` type `_examples/original_source/src/point.rs`
// builds on, kept independent of the kernel's own Point type so this
// package has no dependency on anything above it.
type Coord struct {
	X, Y float64
}

// bigPrec is the working precision for the exact fallback path. Each input
// coordinate is an exact float64, but float64 exponents run from 2^-1074
// to 2^1023, so a difference of two coordinates can need about 2100 bits,
// a product of two differences about 4200, and InCircle's sum of products
// of four differences about 8400. 8500 bits hold every intermediate value
// exactly, so no fallback computation ever rounds.
const bigPrec = 8500

// machineEpsilon is 2^-53, the unit roundoff of float64 arithmetic.
const machineEpsilon = 1.0 / (1 << 53)

// Conservative adaptive error bounds (Shewchuk-style ccwerrboundA /
// iccerrboundA), used to decide whether the fast float64 result's sign can
// be trusted or whether the exact big.Float path must run.
const (
	orientErrBound  = (3 + 16*machineEpsilon) * machineEpsilon
	inCircleErrBound = (10 + 96*machineEpsilon) * machineEpsilon
)

// Orient2D returns the signed area of the triangle (a, b, c) times two:
// positive when a, b, c turn counter-clockwise, negative when clockwise,
// zero when collinear. The sign is exact: near-collinear inputs that would
// flip sign under naive floating-point rounding are recomputed with exact
// big.Float arithmetic before a sign is returned.
func Orient2D(a, b, c Coord) float64 {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return det
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return det
		}
		detSum = -detLeft - detRight
	default:
		return det
	}

	errBound := orientErrBound * detSum
	if det >= errBound || -det >= errBound {
		return det
	}

	return exactOrient2D(a, b, c)
}

// InCircle returns a value whose sign tells where d lies relative to the
// circle through a, b, c (assumed counter-clockwise): positive if d is
// inside, negative if outside, zero if exactly on the circle. Like
// Orient2D, the sign is exact under adaptive precision.
func InCircle(a, b, c, d Coord) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (abs(bdxcdy)+abs(cdxbdy))*alift +
		(abs(cdxady)+abs(adxcdy))*blift +
		(abs(adxbdy)+abs(bdxady))*clift
	errBound := inCircleErrBound * permanent

	if det > errBound || -det > errBound {
		return det
	}

	return exactInCircle(a, b, c, d)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func toBig(f float64) *big.Float {
	return new(big.Float).SetPrec(bigPrec).SetFloat64(f)
}

func bigSub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrec).Sub(a, b)
}

func bigMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrec).Mul(a, b)
}

func bigAdd(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrec).Add(a, b)
}

func exactOrient2D(a, b, c Coord) float64 {
	ax, ay := toBig(a.X), toBig(a.Y)
	bx, by := toBig(b.X), toBig(b.Y)
	cx, cy := toBig(c.X), toBig(c.Y)

	axc := bigSub(ax, cx)
	byc := bigSub(by, cy)
	ayc := bigSub(ay, cy)
	bxc := bigSub(bx, cx)

	det := bigSub(bigMul(axc, byc), bigMul(ayc, bxc))
	v, _ := det.Float64()
	return v
}

func exactInCircle(a, b, c, d Coord) float64 {
	ax, ay := toBig(a.X), toBig(a.Y)
	bx, by := toBig(b.X), toBig(b.Y)
	cx, cy := toBig(c.X), toBig(c.Y)
	dx, dy := toBig(d.X), toBig(d.Y)

	adx, ady := bigSub(ax, dx), bigSub(ay, dy)
	bdx, bdy := bigSub(bx, dx), bigSub(by, dy)
	cdx, cdy := bigSub(cx, dx), bigSub(cy, dy)

	alift := bigAdd(bigMul(adx, adx), bigMul(ady, ady))
	blift := bigAdd(bigMul(bdx, bdx), bigMul(bdy, bdy))
	clift := bigAdd(bigMul(cdx, cdx), bigMul(cdy, cdy))

	bdxcdy := bigMul(bdx, cdy)
	cdxbdy := bigMul(cdx, bdy)
	cdxady := bigMul(cdx, ady)
	adxcdy := bigMul(adx, cdy)
	adxbdy := bigMul(adx, bdy)
	bdxady := bigMul(bdx, ady)

	t1 := bigMul(alift, bigSub(bdxcdy, cdxbdy))
	t2 := bigMul(blift, bigSub(cdxady, adxcdy))
	t3 := bigMul(clift, bigSub(adxbdy, bdxady))

	det := bigAdd(bigAdd(t1, t2), t3)
	v, _ := det.Float64()
	return v
}
