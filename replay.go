package svgpath

// Surface is the set of capabilities a drawing backend exposes to have a
// Path replayed on it.
type Surface interface {
	SetFillRule(rule FillRule)
	MoveTo(p Point)
	LineTo(p Point)
	CubicCurveTo(c1, c2, end Point)
	QuadraticCurveTo(c, end Point)
	ArcTo(center Point, radius, startAngle, endAngle float64, counterClockwise bool)
	ClosePath()
}

// Replay issues exactly one Surface call per instruction of p, in order.
func Replay(p Path, s Surface) {
	for _, op := range p {
		op.drawTo(s)
	}
}

var _ Surface = (*Recorder)(nil) // assert interface conformance

// Recorder is a Surface which accumulates the calls it receives into a
// Path.
type Recorder struct {
	Path Path
}

// Clear zeros the recorded path
func (r *Recorder) Clear() {
	r.Path = r.Path[:0]
}

func (r *Recorder) SetFillRule(rule FillRule) {
	r.Path = append(r.Path, SetFillRule{Rule: rule})
}

func (r *Recorder) MoveTo(p Point) {
	r.Path = append(r.Path, MoveTo{To: p})
}

func (r *Recorder) LineTo(p Point) {
	r.Path = append(r.Path, LineTo{To: p})
}

func (r *Recorder) CubicCurveTo(c1, c2, end Point) {
	r.Path = append(r.Path, CubicCurveTo{Control1: c1, Control2: c2, End: end})
}

func (r *Recorder) QuadraticCurveTo(c, end Point) {
	r.Path = append(r.Path, QuadraticCurveTo{Control: c, End: end})
}

func (r *Recorder) ArcTo(center Point, radius, startAngle, endAngle float64, counterClockwise bool) {
	r.Path = append(r.Path, ArcTo{
		Center:           center,
		Radius:           radius,
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		CounterClockwise: counterClockwise,
	})
}

func (r *Recorder) ClosePath() {
	r.Path = append(r.Path, ClosePath{})
}
