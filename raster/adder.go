package raster

import (
	"golang.org/x/image/math/fixed"

	"github.com/vasalvit/svgpath"
)

// adder is the path building side of rasterx.Filler and rasterx.Dasher.
type adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

func toFixed(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// pathAdder is a Surface feeding an adder. It follows canvas rules for
// segments issued without a current subpath.
type pathAdder struct {
	a       adder
	open    bool // a subpath has been started
	current svgpath.Point
	start   svgpath.Point // first point of the current subpath
	placed  bool          // current is meaningful
}

func feed(p svgpath.Path, a adder) {
	pa := &pathAdder{a: a}
	svgpath.Replay(p, pa)
	if pa.open {
		a.Stop(false)
	}
}

// ensure starts a subpath at the current point if none is open.
func (pa *pathAdder) ensure(p svgpath.Point) {
	if !pa.placed {
		pa.current, pa.placed = p, true
	}
	if !pa.open {
		pa.a.Start(toFixed(pa.current))
		pa.start = pa.current
		pa.open = true
	}
}

func (pa *pathAdder) SetFillRule(svgpath.FillRule) {}

func (pa *pathAdder) MoveTo(p svgpath.Point) {
	if pa.open {
		pa.a.Stop(false)
	}
	pa.a.Start(toFixed(p))
	pa.open = true
	pa.current, pa.start, pa.placed = p, p, true
}

func (pa *pathAdder) LineTo(p svgpath.Point) {
	pa.ensure(p)
	pa.a.Line(toFixed(p))
	pa.current = p
}

func (pa *pathAdder) CubicCurveTo(c1, c2, end svgpath.Point) {
	pa.ensure(c1)
	pa.a.CubeBezier(toFixed(c1), toFixed(c2), toFixed(end))
	pa.current = end
}

func (pa *pathAdder) QuadraticCurveTo(c, end svgpath.Point) {
	pa.ensure(c)
	pa.a.QuadBezier(toFixed(c), toFixed(end))
	pa.current = end
}

// ArcTo draws a line from the current point to the start of the arc, then
// the arc itself.
func (pa *pathAdder) ArcTo(center svgpath.Point, radius, startAngle, endAngle float64, ccw bool) {
	first, curves := arcCubics(center, radius, startAngle, endAngle, ccw)
	pa.ensure(first)
	if pa.current != first {
		pa.a.Line(toFixed(first))
	}
	for _, c := range curves {
		pa.a.CubeBezier(toFixed(c[0]), toFixed(c[1]), toFixed(c[2]))
	}
	if n := len(curves); n > 0 {
		pa.current = curves[n-1][2]
	} else {
		pa.current = first
	}
}

// ClosePath closes the subpath; the next segment starts where it began.
func (pa *pathAdder) ClosePath() {
	if pa.open {
		pa.a.Stop(true)
		pa.open = false
		pa.current = pa.start
	}
}
