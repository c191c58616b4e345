package svgpath

import "fmt"

// ErrorKind identifies why a path string was rejected.
type ErrorKind int

const (
	// InvalidCommand means a command letter was required but the current
	// character is not one that is allowed at this point.
	InvalidCommand ErrorKind = iota + 1
	// UnexpectedEndOfStream means the input ended right after a command
	// letter that takes arguments.
	UnexpectedEndOfStream
	// InvalidNumber means a numeric literal is malformed or missing.
	InvalidNumber
	// InvalidFillRuleValue means the F argument is neither 0 nor 1.
	InvalidFillRuleValue
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCommand:
		return "invalid command"
	case UnexpectedEndOfStream:
		return "unexpected end of stream"
	case InvalidNumber:
		return "invalid number"
	case InvalidFillRuleValue:
		return "invalid fill rule value"
	default:
		return "unknown"
	}
}

// ParseError is returned by Parse. Offset is the byte offset of the
// cursor in the source when parsing stopped and Char the byte found there.
// AtEnd is set when Offset is the length of the source, Char is then 0.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Char   byte
	AtEnd  bool
}

func (e *ParseError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("svgpath: %s at end of input (offset %d)", e.Kind, e.Offset)
	}
	return fmt.Sprintf("svgpath: %s at offset %d (%q)", e.Kind, e.Offset, e.Char)
}

// Is reports whether target is a *ParseError of the same kind, so that
// errors.Is(err, ErrInvalidNumber) works regardless of the position.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidCommand        = &ParseError{Kind: InvalidCommand}
	ErrUnexpectedEndOfStream = &ParseError{Kind: UnexpectedEndOfStream}
	ErrInvalidNumber         = &ParseError{Kind: InvalidNumber}
	ErrInvalidFillRuleValue  = &ParseError{Kind: InvalidFillRuleValue}
)
