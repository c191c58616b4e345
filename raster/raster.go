// Package raster implements a raster backend for svgpath, by wrapping
// rasterx.
package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanx"
	"golang.org/x/image/math/fixed"

	"github.com/vasalvit/svgpath"
)

var _ svgpath.Canvas = (*Renderer)(nil) // assert interface conformance

// Renderer records the path replayed on it and paints it into an RGBA
// image on Fill and Stroke.
type Renderer struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	rec    svgpath.Recorder
}

// NewRenderer returns a renderer drawing through scanner, which must
// cover width x height pixels. The fill rule only takes effect if the
// scanner honours SetWinding; rasterx.ScannerGV always fills non-zero.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
	}
}

// NewImageRenderer returns a renderer painting into a new, transparent
// image of the given size, with both fill rules supported.
func NewImageRenderer(width, height int) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rd := NewRenderer(width, height, scanx.NewScanner(scanx.NewImgSpanner(img), width, height))
	rd.img = img
	return rd
}

// Image returns the image the renderer paints into, or nil if it was
// built with NewRenderer.
func (rd *Renderer) Image() *image.RGBA {
	return rd.img
}

// Clear drops the recorded path. The image is left untouched.
func (rd *Renderer) Clear() {
	rd.rec.Clear()
}

func (rd *Renderer) SetFillRule(rule svgpath.FillRule) { rd.rec.SetFillRule(rule) }
func (rd *Renderer) MoveTo(p svgpath.Point)            { rd.rec.MoveTo(p) }
func (rd *Renderer) LineTo(p svgpath.Point)            { rd.rec.LineTo(p) }
func (rd *Renderer) ClosePath()                        { rd.rec.ClosePath() }

func (rd *Renderer) CubicCurveTo(c1, c2, end svgpath.Point) {
	rd.rec.CubicCurveTo(c1, c2, end)
}

func (rd *Renderer) QuadraticCurveTo(c, end svgpath.Point) {
	rd.rec.QuadraticCurveTo(c, end)
}

func (rd *Renderer) ArcTo(center svgpath.Point, radius, startAngle, endAngle float64, counterClockwise bool) {
	rd.rec.ArcTo(center, radius, startAngle, endAngle, counterClockwise)
}

// Fill paints the inside of the recorded path.
func (rd *Renderer) Fill(rule svgpath.FillRule, c color.Color) {
	rd.filler.Clear()
	rd.filler.SetWinding(rule == svgpath.NonZero)
	feed(rd.rec.Path, rd.filler)
	rd.filler.Scanner.SetColor(c)
	rd.filler.Draw()
}

// Stroke paints the outline of the recorded path with round joins and
// caps.
func (rd *Renderer) Stroke(width float64, c color.Color) {
	rd.dasher.Clear()
	rd.dasher.SetWinding(true)
	rd.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	feed(rd.rec.Path, rd.dasher)
	rd.dasher.Scanner.SetColor(c)
	rd.dasher.Draw()
}
