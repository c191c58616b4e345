package svgpath

import (
	"fmt"

	gl "github.com/rustyoz/genericlexer"
)

// PolyLine is a set of connected line segments. It also represents
// polygon elements, which are closed.
type PolyLine struct {
	shape
	Points string `xml:"points,attr"`

	closed bool
}

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface.
func (pl *PolyLine) ParseDrawingInstructions() (Path, error) {
	l, err := lexPathData(pl.ID, pl.Points)
	if err != nil {
		return nil, fmt.Errorf("polyline %q: %w", pl.ID, err)
	}
	defer drain(l)
	pdp := &pathDescriptionParser{lex: l}

	var coords []float64
	for pdp.hasNumber() {
		n, err := pdp.parseNumber()
		if err != nil {
			return nil, fmt.Errorf("polyline %q: %w", pl.ID, err)
		}
		coords = append(coords, n)
	}
	if i := pdp.lex.NextItem(); i.Type != gl.ItemEOS {
		return nil, fmt.Errorf("polyline %q: unexpected %q in points", pl.ID, i.Value)
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("polyline %q has odd number of coordinates", pl.ID)
	}
	if len(coords) < 4 {
		return nil, nil
	}

	path := Path{MoveTo{To: Point{X: coords[0], Y: coords[1]}}}
	for i := 2; i < len(coords); i += 2 {
		path = append(path, LineTo{To: Point{X: coords[i], Y: coords[i+1]}})
	}
	if pl.closed {
		path = append(path, ClosePath{})
	}
	return pl.withFillRule(path), nil
}
