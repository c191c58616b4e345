package svgpath

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Element is a node of an imported SVG document: a *Group or one of the
// shapes (*PathElement, *Circle, *Rect, *PolyLine).
type Element interface {
	isElement()
}

// DrawingInstructionParser is implemented by every SVG shape that can be
// reduced to a Path.
type DrawingInstructionParser interface {
	Element
	ParseDrawingInstructions() (Path, error)
}

// Svg represents an SVG file reduced to the elements this package can
// turn into drawing instructions.
type Svg struct {
	Title    string
	Elements []Element

	logger *slog.Logger
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID        string
	FillRule  string
	Transform string
	Elements  []Element
	Parent    *Group

	logger *slog.Logger
}

func (*Group) isElement() {}

// shape holds the attributes shared by all shapes.
type shape struct {
	ID        string `xml:"id,attr"`
	FillRule  string `xml:"fill-rule,attr"`
	Transform string `xml:"transform,attr"`

	group *Group
}

func (*shape) isElement() {}

func (s *shape) transform() (id, t string) { return s.ID, s.Transform }

// withFillRule prefixes p with the fill rule set on the shape or, failing
// that, on the closest enclosing group.
func (s *shape) withFillRule(p Path) Path {
	rule := s.FillRule
	for g := s.group; rule == "" && g != nil; g = g.Parent {
		rule = g.FillRule
	}
	switch strings.TrimSpace(rule) {
	case "evenodd":
		return append(Path{SetFillRule{Rule: EvenOdd}}, p...)
	case "nonzero":
		return append(Path{SetFillRule{Rule: NonZero}}, p...)
	}
	return p
}

// lengths parses length attributes, keeping the first error.
type lengths struct {
	err error
}

// parse reads one attribute. Empty means 0 and a "px" suffix is accepted;
// other units are an error.
func (ls *lengths) parse(name, v string) float64 {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if v == "" || ls.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		ls.err = fmt.Errorf("invalid %s %q", name, v)
		return 0
	}
	return f
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "fill-rule":
			g.FillRule = attr.Value
		case "transform":
			g.Transform = attr.Value
		}
	}

	elements, err := decodeElements(decoder, g, g.logger)
	if err != nil {
		return fmt.Errorf("error decoding element of Group %q: %w", g.ID, err)
	}
	g.Elements = elements
	return nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "svg" {
		return fmt.Errorf("root element is <%s>, not <svg>", start.Name.Local)
	}
	elements, err := decodeElements(decoder, nil, s.log())
	if err != nil {
		return err
	}
	for _, e := range elements {
		if t, ok := e.(*title); ok {
			if s.Title == "" {
				s.Title = strings.TrimSpace(t.Text)
			}
			continue
		}
		s.Elements = append(s.Elements, e)
	}
	return nil
}

// title only lives for the duration of decoding.
type title struct {
	Text string `xml:",chardata"`
}

func (*title) isElement() {}

// decodeElements reads the children of the current element up to its end
// tag.
func decodeElements(decoder *xml.Decoder, parent *Group, logger *slog.Logger) ([]Element, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var elements []Element
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var e Element
			switch tok.Name.Local {
			case "g":
				e = &Group{Parent: parent, logger: logger}
			case "path":
				e = &PathElement{shape: shape{group: parent}}
			case "circle":
				e = &Circle{shape: shape{group: parent}}
			case "rect":
				e = &Rect{shape: shape{group: parent}}
			case "polyline":
				e = &PolyLine{shape: shape{group: parent}}
			case "polygon":
				e = &PolyLine{shape: shape{group: parent}, closed: true}
			case "title":
				if parent != nil {
					if err := decoder.Skip(); err != nil {
						return nil, err
					}
					continue
				}
				e = &title{}
			default:
				logger.Debug("skipping unsupported svg element", "element", tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
				continue
			}

			if err := decoder.DecodeElement(e, &tok); err != nil {
				return nil, fmt.Errorf("error decoding <%s>: %w", tok.Name.Local, err)
			}
			elements = append(elements, e)

		case xml.EndElement:
			return elements, nil
		}
	}
}

func (s *Svg) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

// Paths returns one Path per shape, in document order. Shapes which
// cannot be converted are logged and skipped, empty ones are dropped.
func (s *Svg) Paths() []Path {
	var paths []Path
	s.collect(s.Elements, &paths)
	return paths
}

func (s *Svg) collect(elements []Element, paths *[]Path) {
	for _, e := range elements {
		s.logTransform(e)
		switch e := e.(type) {
		case *Group:
			s.collect(e.Elements, paths)
		case DrawingInstructionParser:
			p, err := e.ParseDrawingInstructions()
			if err != nil {
				s.log().Warn("skipping svg shape", "err", err)
				continue
			}
			if len(p) == 0 {
				continue
			}
			*paths = append(*paths, p)
		}
	}
}

// logTransform logs transform attributes, which are not applied.
func (s *Svg) logTransform(e Element) {
	var id, t string
	switch e := e.(type) {
	case *Group:
		id, t = e.ID, e.Transform
	case interface{ transform() (string, string) }:
		id, t = e.transform()
	}
	if strings.TrimSpace(t) != "" {
		s.log().Debug("ignoring svg transform", "id", id, "transform", t)
	}
}

// ParseSvg parses an SVG string into an SVG struct. logger receives
// diagnostics about skipped content; nil means slog.Default().
func ParseSvg(str string, logger *slog.Logger) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), logger)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, logger *slog.Logger) (*Svg, error) {
	svg := &Svg{logger: logger}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return svg, nil
}
