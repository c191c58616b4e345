package svgpath

import (
	"fmt"
	"math"
)

// Circle is an SVG circle element
type Circle struct {
	shape
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface. A circle without a positive radius is not drawn.
func (c *Circle) ParseDrawingInstructions() (Path, error) {
	var ls lengths
	cx, cy, r := ls.parse("cx", c.Cx), ls.parse("cy", c.Cy), ls.parse("r", c.Radius)
	if ls.err != nil {
		return nil, fmt.Errorf("circle %q: %w", c.ID, ls.err)
	}
	if r <= 0 {
		return nil, nil
	}
	return c.withFillRule(Path{
		MoveTo{To: Point{X: cx + r, Y: cy}},
		ArcTo{Center: Point{X: cx, Y: cy}, Radius: r, StartAngle: 0, EndAngle: 2 * math.Pi},
		ClosePath{},
	}), nil
}
