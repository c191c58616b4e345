package svgpath

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style holds the paint options used by Draw. Colors are "#rgb",
// "#rrggbb", "#rrggbbaa", an SVG color keyword or "none".
type Style struct {
	Stroke    string  `yaml:"stroke"`     // empty means black
	Fill      string  `yaml:"fill"`       // empty means no fill
	LineWidth float64 `yaml:"line_width"` // 0 means 1
	Scale     float64 `yaml:"scale"`      // 0 means 1
	Translate Point   `yaml:"translate"`
}

// DefaultStyle strokes in black with a width of 1 and does not fill.
var DefaultStyle = Style{Stroke: "black", LineWidth: 1, Scale: 1}

func (st Style) scale() float64 {
	if st.Scale == 0 {
		return 1
	}
	return st.Scale
}

func (st Style) lineWidth() float64 {
	if st.LineWidth == 0 {
		return 1
	}
	return st.LineWidth
}

// ParseColor resolves a color specification. It returns nil for "none".
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return nil, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("svgpath: unknown color %q", s)
}

func parseHexColor(spec string) (color.Color, error) {
	h := spec
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return nil, fmt.Errorf("svgpath: invalid hex color %q", "#"+spec)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("svgpath: invalid hex color %q: %w", "#"+spec, err)
	}
	// color.RGBA is alpha-premultiplied
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Canvas is a drawing surface that can paint the path replayed on it.
type Canvas interface {
	Surface
	// Clear drops the current path.
	Clear()
	// Fill paints the inside of the current path.
	Fill(rule FillRule, c color.Color)
	// Stroke paints the outline of the current path.
	Stroke(width float64, c color.Color)
}

// ruleSurface remembers the last fill rule it forwards.
type ruleSurface struct {
	Surface
	rule FillRule
}

func (rs *ruleSurface) SetFillRule(rule FillRule) {
	rs.rule = rule
	rs.Surface.SetFillRule(rule)
}

// Draw parses src and paints it on cv with st.
func Draw(cv Canvas, src string, st Style) error {
	p, err := Parse(src)
	if err != nil {
		return err
	}
	return DrawPath(cv, p, st)
}

// DrawPath clears the current path of cv, replays p on it through the
// scale and translation of st, then fills it with the last fill rule seen
// in p (even-odd if none) and strokes it.
func DrawPath(cv Canvas, p Path, st Style) error {
	stroke := st.Stroke
	if stroke == "" {
		stroke = "black"
	}
	strokeColor, err := ParseColor(stroke)
	if err != nil {
		return err
	}
	var fillColor color.Color
	if st.Fill != "" {
		if fillColor, err = ParseColor(st.Fill); err != nil {
			return err
		}
	}

	cv.Clear()
	scale := st.scale()
	rs := &ruleSurface{Surface: Transform(cv, scale, st.Translate), rule: EvenOdd}
	Replay(p, rs)

	if fillColor != nil {
		cv.Fill(rs.rule, fillColor)
	}
	if strokeColor != nil {
		cv.Stroke(st.lineWidth()*math.Abs(scale), strokeColor)
	}
	return nil
}
