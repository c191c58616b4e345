package svgpath

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// transformSurface applies a uniform scale followed by a translation to
// everything it forwards.
type transformSurface struct {
	next      Surface
	transform mt.Transform
	scale     float64
}

// Transform returns a Surface which maps every point p to
// p*scale + translate before forwarding it to s. Arc radii are scaled by
// |scale|.
func Transform(s Surface, scale float64, translate Point) Surface {
	t := mt.Identity()
	t.Translate(translate.X, translate.Y)
	t.Scale(scale, scale)
	return &transformSurface{next: s, transform: t, scale: scale}
}

func (ts *transformSurface) apply(p Point) Point {
	x, y := ts.transform.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

func (ts *transformSurface) SetFillRule(rule FillRule) {
	ts.next.SetFillRule(rule)
}

func (ts *transformSurface) MoveTo(p Point) {
	ts.next.MoveTo(ts.apply(p))
}

func (ts *transformSurface) LineTo(p Point) {
	ts.next.LineTo(ts.apply(p))
}

func (ts *transformSurface) CubicCurveTo(c1, c2, end Point) {
	ts.next.CubicCurveTo(ts.apply(c1), ts.apply(c2), ts.apply(end))
}

func (ts *transformSurface) QuadraticCurveTo(c, end Point) {
	ts.next.QuadraticCurveTo(ts.apply(c), ts.apply(end))
}

func (ts *transformSurface) ArcTo(center Point, radius, startAngle, endAngle float64, counterClockwise bool) {
	ts.next.ArcTo(ts.apply(center), radius*math.Abs(ts.scale), startAngle, endAngle, counterClockwise)
}

func (ts *transformSurface) ClosePath() {
	ts.next.ClosePath()
}
