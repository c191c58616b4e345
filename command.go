package svgpath

// Each grammar is entered with the cursor on its own command letter and
// returns the instructions produced by that occurrence of the command.

type grammar func(c *cursor) (Path, error)

var grammars = map[byte]grammar{
	'F': parseFillRule,
	'M': parseMoveTo,
	'L': parseLineTo,
	'C': parseCurveTo,
	'Q': parseQuadTo,
	'A': parseArcTo,
	'Z': parseClose,
}

// enter steps over the command letter and any whitespace after it.
func enter(c *cursor) error {
	if !c.advance() {
		return c.fail(UnexpectedEndOfStream)
	}
	c.skipWhitespace()
	return nil
}

// more reports whether another argument group follows before the next
// command letter.
func more(c *cursor) bool {
	return !c.done() && !isCommand(c.current())
}

func parseFillRule(c *cursor) (Path, error) {
	if err := enter(c); err != nil {
		return nil, err
	}
	at := c.pos
	n, err := c.scanNumber()
	if err != nil {
		return nil, err
	}
	var rule FillRule
	switch n {
	case 0:
		rule = EvenOdd
	case 1:
		rule = NonZero
	default:
		return nil, c.failAt(InvalidFillRuleValue, at)
	}
	c.skipSeparator()
	return Path{SetFillRule{Rule: rule}}, nil
}

func parseMoveTo(c *cursor) (Path, error) {
	if err := enter(c); err != nil {
		return nil, err
	}
	var to Point
	if err := c.scanPoints(&to); err != nil {
		return nil, err
	}
	return Path{MoveTo{To: to}}, nil
}

func parseLineTo(c *cursor) (Path, error) {
	if err := enter(c); err != nil {
		return nil, err
	}
	var p Path
	for more(c) {
		var to Point
		if err := c.scanPoints(&to); err != nil {
			return nil, err
		}
		p = append(p, LineTo{To: to})
	}
	return p, nil
}

func parseCurveTo(c *cursor) (Path, error) {
	if err := enter(c); err != nil {
		return nil, err
	}
	var p Path
	for more(c) {
		var op CubicCurveTo
		if err := c.scanPoints(&op.Control1, &op.Control2, &op.End); err != nil {
			return nil, err
		}
		p = append(p, op)
	}
	return p, nil
}

func parseQuadTo(c *cursor) (Path, error) {
	if err := enter(c); err != nil {
		return nil, err
	}
	var p Path
	for more(c) {
		var op QuadraticCurveTo
		if err := c.scanPoints(&op.Control, &op.End); err != nil {
			return nil, err
		}
		p = append(p, op)
	}
	return p, nil
}

// parseArcTo reads center, radius, start angle, end angle and a direction
// flag; only a flag of exactly 1 means counter-clockwise.
func parseArcTo(c *cursor) (Path, error) {
	if err := enter(c); err != nil {
		return nil, err
	}
	var p Path
	for more(c) {
		var (
			op   ArcTo
			flag float64
		)
		if err := c.scanPoints(&op.Center); err != nil {
			return nil, err
		}
		if err := c.scanNumbers(&op.Radius, &op.StartAngle, &op.EndAngle, &flag); err != nil {
			return nil, err
		}
		op.CounterClockwise = flag == 1
		p = append(p, op)
	}
	return p, nil
}

func parseClose(c *cursor) (Path, error) {
	c.advance()
	c.skipWhitespace()
	return Path{ClosePath{}}, nil
}
