// Package svgpath parses a compact, SVG-like path grammar into an ordered
// list of drawing instructions that a path drawing library can replay.
//
// A path is a sequence of commands:
//
//	F rule            fill rule, 0 (even-odd) or 1 (non-zero), first token only
//	M x,y             move to
//	L x,y ...         line to
//	C x1,y1 x2,y2 x,y ...   cubic curve to
//	Q x1,y1 x,y ...   quadratic curve to
//	A cx,cy r start end ccw ...   arc around (cx,cy), angles in radians
//	Z                 close path
//
// Letters are case-insensitive. Arguments are separated by whitespace, a
// comma or both, and every command except F, M and Z repeats while further
// argument groups follow.
package svgpath

import "strings"

// Parse turns src into drawing instructions. On failure it returns a
// *ParseError and no instructions.
func Parse(src string) (Path, error) {
	if src == "" {
		return Path{}, nil
	}

	c := newCursor(strings.ToUpper(src))
	c.skipWhitespace()
	if c.done() {
		return Path{}, nil
	}

	var path Path
	switch c.current() {
	case 'F', 'M':
		first, err := grammars[c.current()](c)
		if err != nil {
			return nil, err
		}
		path = append(path, first...)
	default:
		return nil, c.fail(InvalidCommand)
	}

	for !c.done() {
		ch := c.current()
		if !isCommand(ch) {
			return nil, c.fail(InvalidCommand)
		}
		ops, err := grammars[ch](c)
		if err != nil {
			return nil, err
		}
		path = append(path, ops...)
	}
	return path, nil
}

// MustParse is like Parse but panics on error. It is meant for path
// literals known to be valid.
func MustParse(src string) Path {
	p, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return p
}
