package raster

import (
	"math"

	"github.com/vasalvit/svgpath"
)

// arcSweep returns the signed angle swept by an arc drawn from start to
// end, following canvas arc() rules: clockwise sweeps are in [0, 2π],
// counter-clockwise ones in [-2π, 0].
func arcSweep(start, end float64, ccw bool) float64 {
	d := end - start
	if ccw {
		d = start - end
	}
	if d >= 2*math.Pi {
		d = 2 * math.Pi
	} else {
		d = math.Mod(d, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
	}
	if ccw {
		return -d
	}
	return d
}

// arcCubics approximates a circular arc by cubic Bézier curves spanning at
// most a quarter turn each. It returns the first point of the arc and the
// (control1, control2, end) triple of every curve.
func arcCubics(c svgpath.Point, r, start, end float64, ccw bool) (svgpath.Point, [][3]svgpath.Point) {
	at := func(a float64) svgpath.Point {
		return svgpath.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	first := at(start)

	sweep := arcSweep(start, end, ccw)
	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	if n == 0 {
		return first, nil
	}
	delta := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4) * r

	curves := make([][3]svgpath.Point, n)
	for i := range curves {
		a0 := start + float64(i)*delta
		a1 := a0 + delta
		p0, p3 := at(a0), at(a1)
		curves[i] = [3]svgpath.Point{
			{X: p0.X - k*math.Sin(a0), Y: p0.Y + k*math.Cos(a0)},
			{X: p3.X + k*math.Sin(a1), Y: p3.Y - k*math.Cos(a1)},
			p3,
		}
	}
	return first, curves
}
