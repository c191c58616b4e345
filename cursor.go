package svgpath

// eos is returned by cursor.current once the input is exhausted.
const eos byte = 0

// cursor reads a normalized path string one byte at a time. It is owned
// by a single Parse call.
type cursor struct {
	src string
	pos int
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

func (c *cursor) current() byte {
	return c.at(c.pos)
}

func (c *cursor) at(i int) byte {
	if i >= len(c.src) {
		return eos
	}
	return c.src[i]
}

// advance moves one byte forward and reports whether a byte remains.
func (c *cursor) advance() bool {
	if c.pos < len(c.src) {
		c.pos++
	}
	return c.pos < len(c.src)
}

func (c *cursor) done() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) fail(kind ErrorKind) error {
	return c.failAt(kind, c.pos)
}

func (c *cursor) failAt(kind ErrorKind, i int) error {
	return &ParseError{Kind: kind, Offset: i, Char: c.at(i), AtEnd: i >= len(c.src)}
}
