package svgpath

import (
	"strconv"
	"strings"
)

// Format writes p back in path syntax. Numbers are written in plain
// decimal notation so the result always parses back to p.
func Format(p Path) string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch op := op.(type) {
		case SetFillRule:
			if op.Rule == NonZero {
				sb.WriteString("F1")
			} else {
				sb.WriteString("F0")
			}
		case MoveTo:
			sb.WriteByte('M')
			writePoint(&sb, op.To)
		case LineTo:
			sb.WriteByte('L')
			writePoint(&sb, op.To)
		case CubicCurveTo:
			sb.WriteByte('C')
			writePoint(&sb, op.Control1)
			sb.WriteByte(' ')
			writePoint(&sb, op.Control2)
			sb.WriteByte(' ')
			writePoint(&sb, op.End)
		case QuadraticCurveTo:
			sb.WriteByte('Q')
			writePoint(&sb, op.Control)
			sb.WriteByte(' ')
			writePoint(&sb, op.End)
		case ArcTo:
			sb.WriteByte('A')
			writePoint(&sb, op.Center)
			for _, v := range [...]float64{op.Radius, op.StartAngle, op.EndAngle} {
				sb.WriteByte(' ')
				sb.WriteString(formatNumber(v))
			}
			if op.CounterClockwise {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" 0")
			}
		case ClosePath:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return Format(p)
}

func writePoint(sb *strings.Builder, pt Point) {
	sb.WriteString(formatNumber(pt.X))
	sb.WriteByte(',')
	sb.WriteString(formatNumber(pt.Y))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
