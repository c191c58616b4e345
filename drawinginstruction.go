package svgpath

// InstructionType tells a path drawing library which function it has
// to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	FillRuleInstruction InstructionType = iota
	MoveInstruction
	LineInstruction
	CurveInstruction
	QuadInstruction
	ArcInstruction
	CloseInstruction
)

func (t InstructionType) String() string {
	switch t {
	case FillRuleInstruction:
		return "SetFillRule"
	case MoveInstruction:
		return "MoveTo"
	case LineInstruction:
		return "LineTo"
	case CurveInstruction:
		return "CubicCurveTo"
	case QuadInstruction:
		return "QuadraticCurveTo"
	case ArcInstruction:
		return "ArcTo"
	case CloseInstruction:
		return "ClosePath"
	default:
		return "Unknown"
	}
}

// Point is an X,Y coordinate
type Point struct {
	X, Y float64
}

// FillRule selects how a renderer decides which regions of a closed path
// are inside.
type FillRule int

const (
	EvenOdd FillRule = iota
	NonZero
)

func (r FillRule) String() string {
	if r == NonZero {
		return "nonzero"
	}
	return "evenodd"
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw one step of a path. The set of implementations is
// closed: SetFillRule, MoveTo, LineTo, CubicCurveTo, QuadraticCurveTo,
// ArcTo and ClosePath.
type DrawingInstruction interface {
	Kind() InstructionType
	// replays itself as exactly one call on s
	drawTo(s Surface)
}

type SetFillRule struct {
	Rule FillRule
}

type MoveTo struct {
	To Point
}

type LineTo struct {
	To Point
}

type CubicCurveTo struct {
	Control1, Control2, End Point
}

type QuadraticCurveTo struct {
	Control, End Point
}

// ArcTo is a circular arc around Center. Angles are in radians.
type ArcTo struct {
	Center               Point
	Radius               float64
	StartAngle, EndAngle float64
	CounterClockwise     bool
}

type ClosePath struct{}

func (SetFillRule) Kind() InstructionType      { return FillRuleInstruction }
func (MoveTo) Kind() InstructionType           { return MoveInstruction }
func (LineTo) Kind() InstructionType           { return LineInstruction }
func (CubicCurveTo) Kind() InstructionType     { return CurveInstruction }
func (QuadraticCurveTo) Kind() InstructionType { return QuadInstruction }
func (ArcTo) Kind() InstructionType            { return ArcInstruction }
func (ClosePath) Kind() InstructionType        { return CloseInstruction }

func (op SetFillRule) drawTo(s Surface) { s.SetFillRule(op.Rule) }
func (op MoveTo) drawTo(s Surface)      { s.MoveTo(op.To) }
func (op LineTo) drawTo(s Surface)      { s.LineTo(op.To) }
func (op CubicCurveTo) drawTo(s Surface) {
	s.CubicCurveTo(op.Control1, op.Control2, op.End)
}
func (op QuadraticCurveTo) drawTo(s Surface) { s.QuadraticCurveTo(op.Control, op.End) }
func (op ArcTo) drawTo(s Surface) {
	s.ArcTo(op.Center, op.Radius, op.StartAngle, op.EndAngle, op.CounterClockwise)
}
func (ClosePath) drawTo(s Surface) { s.ClosePath() }

// Path is an ordered sequence of drawing instructions, in the order they
// appear in the source text.
type Path []DrawingInstruction
