package svgpath

import "fmt"

// Rect is an SVG rect element. Rounded corners are not supported.
type Rect struct {
	shape
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface.
func (r *Rect) ParseDrawingInstructions() (Path, error) {
	var ls lengths
	x, y := ls.parse("x", r.X), ls.parse("y", r.Y)
	w, h := ls.parse("width", r.Width), ls.parse("height", r.Height)
	if ls.err != nil {
		return nil, fmt.Errorf("rect %q: %w", r.ID, ls.err)
	}
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	return r.withFillRule(Path{
		MoveTo{To: Point{X: x, Y: y}},
		LineTo{To: Point{X: x + w, Y: y}},
		LineTo{To: Point{X: x + w, Y: y + h}},
		LineTo{To: Point{X: x, Y: y + h}},
		ClosePath{},
	}), nil
}
