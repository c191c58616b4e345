package svgpath

import (
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// PathElement is an SVG XML path element
type PathElement struct {
	shape
	D string `xml:"d,attr"`
}

// ParseDrawingInstructions converts the path description into absolute
// drawing instructions.
func (p *PathElement) ParseDrawingInstructions() (Path, error) {
	path, err := parsePathDescription(p.ID, p.D)
	if err != nil {
		return nil, err
	}
	return p.withFillRule(path), nil
}

// pathDescriptionParser walks the items of an SVG path description and
// keeps track of the current point, so relative commands can be turned
// into absolute instructions.
type pathDescriptionParser struct {
	lex  *gl.Lexer
	path Path
	x, y float64

	// start of the current subpath, where Z returns to
	sx, sy float64
}

func parsePathDescription(id, d string) (Path, error) {
	l, err := lexPathData(id, d)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", id, err)
	}
	defer drain(l)
	pdp := &pathDescriptionParser{lex: l}
	for {
		i := pdp.lex.NextItem()
		switch i.Type {
		case gl.ItemError:
			return nil, fmt.Errorf("path %q: %s", id, i.Value)
		case gl.ItemEOS:
			return pdp.path, nil
		case gl.ItemLetter:
			if err := pdp.parseCommand(i.Value); err != nil {
				return nil, fmt.Errorf("path %q: %w", id, err)
			}
		case gl.ItemNumber:
			return nil, fmt.Errorf("path %q: number %s without a command", id, i.Value)
		}
	}
}

// lexPathData starts a lexer over path or points data. The caller must
// drain the lexer once done with it.
func lexPathData(name, data string) (*gl.Lexer, error) {
	data, err := normalizePathData(data)
	if err != nil {
		return nil, err
	}
	l, _ := gl.Lex(name, data)
	return l, nil
}

// drain consumes whatever the lexer goroutine still has to send, so that
// it can exit.
func drain(l *gl.Lexer) {
	for range l.Items {
	}
}

// normalizePathData rewrites path data into a form the lexer tokenizes
// one number or letter at a time: command letters are spaced out, numbers
// written back to back ("0.5.5", "1-2") are split, a bare leading '.' gets
// a zero and the exponent marker is lowercased.
func normalizePathData(d string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(d) + len(d)/2)

	var inNumber, digits, dot, exp bool
	startNumber := func() {
		if inNumber {
			sb.WriteByte(' ')
		}
		inNumber, digits, dot, exp = true, false, false, false
	}

	var prev byte
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case c >= '0' && c <= '9':
			if !inNumber {
				startNumber()
			}
			digits = true
			sb.WriteByte(c)
		case c == '.':
			if !inNumber || dot || exp {
				startNumber()
			}
			if !digits {
				sb.WriteByte('0')
			}
			dot = true
			sb.WriteByte('.')
		case c == '-' || c == '+':
			if !inNumber || (prev != 'e' && prev != 'E') {
				startNumber()
			}
			sb.WriteByte(c)
		case (c == 'e' || c == 'E') && inNumber && digits && !exp:
			exp = true
			sb.WriteByte('e')
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			inNumber = false
			sb.WriteByte(' ')
		case c == ',':
			inNumber = false
			sb.WriteByte(',')
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			inNumber = false
			sb.WriteByte(' ')
			sb.WriteByte(c)
			sb.WriteByte(' ')
		default:
			return "", fmt.Errorf("unexpected %q at offset %d", c, i)
		}
		prev = c
	}
	return sb.String(), nil
}

func (pdp *pathDescriptionParser) parseCommand(cmd string) error {
	switch cmd {
	case "M", "m":
		return pdp.parseMoveTo(cmd == "m")
	case "L", "l":
		return pdp.parseLineTo(cmd == "l")
	case "H", "h":
		return pdp.parseHLineTo(cmd == "h")
	case "V", "v":
		return pdp.parseVLineTo(cmd == "v")
	case "C", "c":
		return pdp.parseCurveTo(cmd == "c")
	case "Q", "q":
		return pdp.parseQuadTo(cmd == "q")
	case "Z", "z":
		pdp.path = append(pdp.path, ClosePath{})
		pdp.x, pdp.y = pdp.sx, pdp.sy
		return nil
	}
	return fmt.Errorf("unsupported command %q", cmd)
}

// consumeSeparator skips whitespace and at most one comma.
func (pdp *pathDescriptionParser) consumeSeparator() {
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
}

func (pdp *pathDescriptionParser) hasNumber() bool {
	pdp.consumeSeparator()
	return pdp.lex.PeekItem().Type == gl.ItemNumber
}

func (pdp *pathDescriptionParser) parseNumber() (float64, error) {
	pdp.consumeSeparator()
	return parseNumber(pdp.lex.NextItem())
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing number %q: %w", i.Value, err)
	}
	return n, nil
}

// parsePoint reads a coordinate pair, relative to the current point if
// rel is set.
func (pdp *pathDescriptionParser) parsePoint(rel bool) (Point, error) {
	x, err := pdp.parseNumber()
	if err != nil {
		return Point{}, err
	}
	y, err := pdp.parseNumber()
	if err != nil {
		return Point{}, err
	}
	if rel {
		x += pdp.x
		y += pdp.y
	}
	return Point{X: x, Y: y}, nil
}

// parsePoints reads at least one group of n points. All points of a group
// are relative to the current point at the start of the group.
func (pdp *pathDescriptionParser) parsePoints(n int, rel bool, emit func(pts []Point)) error {
	if !pdp.hasNumber() {
		return fmt.Errorf("expected number, got %q", pdp.lex.PeekItem().Value)
	}
	pts := make([]Point, n)
	for pdp.hasNumber() {
		for j := range pts {
			p, err := pdp.parsePoint(rel)
			if err != nil {
				return err
			}
			pts[j] = p
		}
		emit(pts)
		end := pts[n-1]
		pdp.x, pdp.y = end.X, end.Y
	}
	return nil
}

// parseMoveTo handles M: the first pair starts a subpath, further pairs
// are implicit line-tos.
func (pdp *pathDescriptionParser) parseMoveTo(rel bool) error {
	first := true
	return pdp.parsePoints(1, rel, func(pts []Point) {
		if first {
			pdp.path = append(pdp.path, MoveTo{To: pts[0]})
			pdp.sx, pdp.sy = pts[0].X, pts[0].Y
			first = false
			return
		}
		pdp.path = append(pdp.path, LineTo{To: pts[0]})
	})
}

func (pdp *pathDescriptionParser) parseLineTo(rel bool) error {
	return pdp.parsePoints(1, rel, func(pts []Point) {
		pdp.path = append(pdp.path, LineTo{To: pts[0]})
	})
}

func (pdp *pathDescriptionParser) parseCurveTo(rel bool) error {
	return pdp.parsePoints(3, rel, func(pts []Point) {
		pdp.path = append(pdp.path, CubicCurveTo{Control1: pts[0], Control2: pts[1], End: pts[2]})
	})
}

func (pdp *pathDescriptionParser) parseQuadTo(rel bool) error {
	return pdp.parsePoints(2, rel, func(pts []Point) {
		pdp.path = append(pdp.path, QuadraticCurveTo{Control: pts[0], End: pts[1]})
	})
}

func (pdp *pathDescriptionParser) parseHLineTo(rel bool) error {
	if !pdp.hasNumber() {
		return fmt.Errorf("expected number, got %q", pdp.lex.PeekItem().Value)
	}
	for pdp.hasNumber() {
		n, err := pdp.parseNumber()
		if err != nil {
			return err
		}
		if rel {
			pdp.x += n
		} else {
			pdp.x = n
		}
		pdp.path = append(pdp.path, LineTo{To: Point{X: pdp.x, Y: pdp.y}})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseVLineTo(rel bool) error {
	if !pdp.hasNumber() {
		return fmt.Errorf("expected number, got %q", pdp.lex.PeekItem().Value)
	}
	for pdp.hasNumber() {
		n, err := pdp.parseNumber()
		if err != nil {
			return err
		}
		if rel {
			pdp.y += n
		} else {
			pdp.y = n
		}
		pdp.path = append(pdp.path, LineTo{To: Point{X: pdp.x, Y: pdp.y}})
	}
	return nil
}
