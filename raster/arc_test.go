package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svgpath"
)

func TestArcSweep(t *testing.T) {
	for _, test := range []struct {
		start, end float64
		ccw        bool
		want       float64
	}{
		{0, math.Pi / 2, false, math.Pi / 2},
		{0, math.Pi / 2, true, -3 * math.Pi / 2},
		{math.Pi / 2, 0, true, -math.Pi / 2},
		{0, 2 * math.Pi, false, 2 * math.Pi},
		{0, 5 * math.Pi, false, 2 * math.Pi},
		{0, -math.Pi / 2, false, 3 * math.Pi / 2},
		{1, 1, false, 0},
	} {
		require.InDelta(t, test.want, arcSweep(test.start, test.end, test.ccw), 1e-12,
			"start=%v end=%v ccw=%v", test.start, test.end, test.ccw)
	}
}

func TestArcCubicsFullCircle(t *testing.T) {
	c := svgpath.Point{X: 10, Y: 20}
	first, curves := arcCubics(c, 5, 0, 2*math.Pi, false)
	require.InDelta(t, 15, first.X, 1e-9)
	require.InDelta(t, 20, first.Y, 1e-9)
	require.Len(t, curves, 4)

	// every end point lies on the circle
	for _, cv := range curves {
		require.InDelta(t, 5, math.Hypot(cv[2].X-c.X, cv[2].Y-c.Y), 1e-9)
	}
	last := curves[3][2]
	require.InDelta(t, first.X, last.X, 1e-9)
	require.InDelta(t, first.Y, last.Y, 1e-9)

	// the first quarter ends at the bottom in y-down coordinates
	require.InDelta(t, 10, curves[0][2].X, 1e-9)
	require.InDelta(t, 25, curves[0][2].Y, 1e-9)
}

func TestArcCubicsCounterClockwise(t *testing.T) {
	first, curves := arcCubics(svgpath.Point{}, 1, 0, math.Pi/2, true)
	require.InDelta(t, 1, first.X, 1e-9)
	require.Len(t, curves, 3)
	end := curves[2][2]
	require.InDelta(t, 0, end.X, 1e-9)
	require.InDelta(t, 1, end.Y, 1e-9)
	// heads to negative y first
	require.Less(t, curves[0][0].Y, 0.0)
}

func TestArcCubicsEmptySweep(t *testing.T) {
	first, curves := arcCubics(svgpath.Point{}, 3, math.Pi, math.Pi, false)
	require.InDelta(t, -3, first.X, 1e-9)
	require.Empty(t, curves)
}
