package svgpath

import "strconv"

func isWhitespace(c byte) bool { return c == ' ' || c == '\t' }

func isComma(c byte) bool { return c == ',' }

// isCommand reports whether c is one of M L C Q A Z. F is only accepted as
// the very first token and is handled by Parse directly.
func isCommand(c byte) bool {
	switch c {
	case 'M', 'L', 'C', 'Q', 'A', 'Z':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isMinus(c byte) bool { return c == '-' }

func isDecimalPoint(c byte) bool { return c == '.' }

func (c *cursor) skipWhitespace() {
	for isWhitespace(c.current()) {
		c.advance()
	}
}

// skipSeparator consumes an argument separator: whitespace, at most one
// comma, whitespace.
func (c *cursor) skipSeparator() {
	c.skipWhitespace()
	if isComma(c.current()) {
		c.advance()
	}
	c.skipWhitespace()
}

func (c *cursor) skipDigits() int {
	n := 0
	for isDigit(c.current()) {
		c.advance()
		n++
	}
	return n
}

// scanNumber reads '-'? digit* ('.' digit* ('E' '-'? digit+)?)? and
// converts it. An exponent is only recognized after a fractional part.
func (c *cursor) scanNumber() (float64, error) {
	start := c.pos
	if isMinus(c.current()) {
		c.advance()
	}
	c.skipDigits()
	if isDecimalPoint(c.current()) {
		c.advance()
		c.skipDigits()
		if c.current() == 'E' {
			c.advance()
			if isMinus(c.current()) {
				c.advance()
			}
			if c.skipDigits() == 0 {
				return 0, c.fail(InvalidNumber)
			}
		}
	}

	text := c.src[start:c.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, c.failAt(InvalidNumber, start)
	}
	return v, nil
}

// scanPoint reads number, separator, number.
func (c *cursor) scanPoint() (Point, error) {
	x, err := c.scanNumber()
	if err != nil {
		return Point{}, err
	}
	c.skipSeparator()
	y, err := c.scanNumber()
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// scanNumbers reads len(dst) numbers, each followed by a separator.
func (c *cursor) scanNumbers(dst ...*float64) error {
	for _, d := range dst {
		v, err := c.scanNumber()
		if err != nil {
			return err
		}
		*d = v
		c.skipSeparator()
	}
	return nil
}

// scanPoints reads len(dst) points, each followed by a separator.
func (c *cursor) scanPoints(dst ...*Point) error {
	for _, d := range dst {
		p, err := c.scanPoint()
		if err != nil {
			return err
		}
		*d = p
		c.skipSeparator()
	}
	return nil
}
