package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type PathTest struct {
	Description string
	Svg         string
	Want        []Path
}

var tests = []PathTest{
	{
		"absolute lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]Path{{
			MoveTo{Point{0, 0}},
			LineTo{Point{100, 0}},
			LineTo{Point{100, 100}},
			LineTo{Point{0, 100}},
			ClosePath{},
		}},
	},
	{
		"relative lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 l100.000 0.000 100.000 100.000 l0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]Path{{
			MoveTo{Point{0, 0}},
			LineTo{Point{100, 0}},
			LineTo{Point{200, 100}},
			LineTo{Point{200, 200}},
			ClosePath{},
		}},
	},
	{
		"relative h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 h100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]Path{{MoveTo{Point{0, 0}}, LineTo{Point{100, 0}}, LineTo{Point{150, 0}}}},
	},
	{
		"absolute h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 H100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]Path{{MoveTo{Point{0, 0}}, LineTo{Point{100, 0}}, LineTo{Point{50, 0}}}},
	},
	{
		"relative v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 v100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]Path{{MoveTo{Point{0, 0}}, LineTo{Point{0, 100}}, LineTo{Point{0, 150}}}},
	},
	{
		"absolute v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 V100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]Path{{MoveTo{Point{0, 0}}, LineTo{Point{0, 100}}, LineTo{Point{0, 50}}}},
	},
	{
		"move with implicit lines",
		`<svg><path d="M10 10 20 10 20 20"/></svg>`,
		[]Path{{MoveTo{Point{10, 10}}, LineTo{Point{20, 10}}, LineTo{Point{20, 20}}}},
	},
	{
		"curves",
		`<svg><path d="M0 0 C10 0 20 10 20 20 Q30 30 40 20"/></svg>`,
		[]Path{{
			MoveTo{Point{0, 0}},
			CubicCurveTo{Point{10, 0}, Point{20, 10}, Point{20, 20}},
			QuadraticCurveTo{Point{30, 30}, Point{40, 20}},
		}},
	},
	{
		"relative curve",
		`<svg><path d="M10 10 c0 10 10 10 10 0"/></svg>`,
		[]Path{{
			MoveTo{Point{10, 10}},
			CubicCurveTo{Point{10, 20}, Point{20, 20}, Point{20, 10}},
		}},
	},
	{
		"rect",
		`<svg><rect x="10" y="20" width="30" height="40"/></svg>`,
		[]Path{{
			MoveTo{Point{10, 20}},
			LineTo{Point{40, 20}},
			LineTo{Point{40, 60}},
			LineTo{Point{10, 60}},
			ClosePath{},
		}},
	},
	{
		"circle",
		`<svg><circle cx="50" cy="50" r="10"/></svg>`,
		[]Path{{
			MoveTo{Point{60, 50}},
			ArcTo{Center: Point{50, 50}, Radius: 10, StartAngle: 0, EndAngle: 2 * math.Pi},
			ClosePath{},
		}},
	},
	{
		"polygon and polyline",
		`<svg><polygon points="0 0 10 0 10 10"/><polyline points="1 1 2 2"/></svg>`,
		[]Path{
			{MoveTo{Point{0, 0}}, LineTo{Point{10, 0}}, LineTo{Point{10, 10}}, ClosePath{}},
			{MoveTo{Point{1, 1}}, LineTo{Point{2, 2}}},
		},
	},
	{
		"fill rule inherited from groups",
		`<svg><g fill-rule="evenodd"><g><rect width="1" height="1"/></g><rect width="1" height="1" fill-rule="nonzero"/></g></svg>`,
		[]Path{
			{SetFillRule{EvenOdd}, MoveTo{Point{0, 0}}, LineTo{Point{1, 0}}, LineTo{Point{1, 1}}, LineTo{Point{0, 1}}, ClosePath{}},
			{SetFillRule{NonZero}, MoveTo{Point{0, 0}}, LineTo{Point{1, 0}}, LineTo{Point{1, 1}}, LineTo{Point{0, 1}}, ClosePath{}},
		},
	},
	{
		"empty shapes are dropped",
		`<svg><rect width="0" height="10"/><circle r="0"/><polyline points="1 1"/><path d=""/></svg>`,
		nil,
	},
	{
		"unsupported elements are skipped",
		`<svg><text x="1" y="2">hello</text><ellipse rx="1" ry="2"/><path d="M1 1 L2 2"/></svg>`,
		[]Path{{MoveTo{Point{1, 1}}, LineTo{Point{2, 2}}}},
	},
	{
		"leading dot numbers",
		`<svg><path d="M.5.5L10 10"/><path d="M0 0L.5 .5"/></svg>`,
		[]Path{
			{MoveTo{Point{0.5, 0.5}}, LineTo{Point{10, 10}}},
			{MoveTo{Point{0, 0}}, LineTo{Point{0.5, 0.5}}},
		},
	},
	{
		"compact numbers and commands",
		`<svg><path d="M1-2l3,4zm-1.5E1-.5"/></svg>`,
		[]Path{{
			MoveTo{Point{1, -2}},
			LineTo{Point{4, 2}},
			ClosePath{},
			MoveTo{Point{-14, -2.5}},
		}},
	},
	{
		"compact polyline points",
		`<svg><polyline points="0,0 .5,-1-2.5.25"/></svg>`,
		[]Path{{MoveTo{Point{0, 0}}, LineTo{Point{0.5, -1}}, LineTo{Point{-2.5, 0.25}}}},
	},
	{
		"pixel lengths",
		`<svg><rect x="1px" y="2" width="10px" height="5"/><circle cx="3" r="2px"/></svg>`,
		[]Path{
			{MoveTo{Point{1, 2}}, LineTo{Point{11, 2}}, LineTo{Point{11, 7}}, LineTo{Point{1, 7}}, ClosePath{}},
			{
				MoveTo{Point{5, 0}},
				ArcTo{Center: Point{3, 0}, Radius: 2, StartAngle: 0, EndAngle: 2 * math.Pi},
				ClosePath{},
			},
		},
	},
	{
		"unsupported units skip the element only",
		`<svg><rect width="10mm" height="5"/><circle r="2em"/><path d="M0 0 L1 1"/></svg>`,
		[]Path{{MoveTo{Point{0, 0}}, LineTo{Point{1, 1}}}},
	},
	{
		"broken shapes are skipped",
		`<svg><path d="M1 1 S2 2 3 3"/><polyline points="1 2 3"/><path d="M0 0 L1 1 #"/><path d="M5 5 L6 6"/></svg>`,
		[]Path{{MoveTo{Point{5, 5}}, LineTo{Point{6, 6}}}},
	},
}

func TestParsePathList(t *testing.T) {
	for _, test := range tests {
		t.Run(test.Description, func(t *testing.T) {
			svg, err := ParseSvg(test.Svg, nil)
			require.NoError(t, err)
			require.Equal(t, test.Want, svg.Paths())
		})
	}
}

func TestPathConvertsToCompactSyntax(t *testing.T) {
	svg, err := ParseSvg(tests[1].Svg, nil)
	require.NoError(t, err)

	paths := svg.Paths()
	require.Len(t, paths, 1)
	require.Equal(t, "M0,0 L100,0 L200,100 L200,200 Z", Format(paths[0]))

	again, err := Parse(Format(paths[0]))
	require.NoError(t, err)
	require.Equal(t, paths[0], again)
}

func TestNormalizePathData(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"M.5.5", " M 0.5 0.5"},
		{"L.5 .5", " L 0.5 0.5"},
		{"1E1-2e-3", "1e1 -2e-3"},
		{"ZM0,0", " Z  M 0,0"},
		{"-.5+.25", "-0.5 +0.25"},
		{"1\r\n2", "1  2"},
	} {
		got, err := normalizePathData(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := normalizePathData("M0 0 #")
	require.EqualError(t, err, `unexpected '#' at offset 5`)
}
