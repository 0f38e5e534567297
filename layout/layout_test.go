package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexrender/geom"
	"github.com/katalvlaran/hexrender/layout"
	rs "github.com/katalvlaran/hexrender/rendersettings"
)

// a 4×2 unit rectangle outline
var rect = []geom.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}

func TestFit_NoAxisUsesBaseScale(t *testing.T) {
	s := rs.Default().WithSizings(rs.BaseScale(3), rs.SpaceWidth(1), rs.SpaceHeight(1))
	l := layout.Fit(s, rect)
	require.Equal(t, 3.0, l.Scale)
	require.Equal(t, 12.0, l.Width)
	require.Equal(t, 6.0, l.Height)
	require.Equal(t, geom.Vec2{X: 0, Y: 0}, l.Points[0])
	require.Equal(t, geom.Vec2{X: 12, Y: 6}, l.Points[2])
}

func TestFit_Axes(t *testing.T) {
	cases := []struct {
		name  string
		axis  rs.FitAxis
		scale float64
	}{
		{"None", rs.FitNone, 10},
		{"Hor", rs.FitHor, 5},   // (24-2*2)/4
		{"Vert", rs.FitVert, 4}, // (10-2*1)/2
		{"Both", rs.FitBoth, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := rs.Default().WithSizings(
				rs.FitTo(tc.axis), rs.BaseScale(10),
				rs.SpaceWidth(24), rs.SpaceHeight(10),
				rs.HPadding(2), rs.VPadding(1),
			)
			l := layout.Fit(s, rect)
			require.InDelta(t, tc.scale, l.Scale, 1e-12)
			require.InDelta(t, 4*tc.scale+4, l.Width, 1e-12)
			require.InDelta(t, 2*tc.scale+2, l.Height, 1e-12)
		})
	}
}

func TestFit_NeverGrows(t *testing.T) {
	s := rs.Default().WithSizings(rs.FitTo(rs.FitBoth), rs.BaseScale(1), rs.SpaceWidth(1000), rs.SpaceHeight(1000))
	require.Equal(t, 1.0, layout.Fit(s, rect).Scale)
}

func TestFit_MinSizeCentres(t *testing.T) {
	s := rs.Default().WithSizings(rs.BaseScale(1), rs.MinWidth(10), rs.MinHeight(6))
	l := layout.Fit(s, rect)
	require.Equal(t, 10.0, l.Width)
	require.Equal(t, 6.0, l.Height)
	// 4×2 content centred in a 10×6 box
	require.Equal(t, geom.Vec2{X: 3, Y: 2}, l.Points[0])
	require.Equal(t, geom.Vec2{X: 7, Y: 4}, l.Points[2])
}

func TestFit_DegenerateInputs(t *testing.T) {
	s := rs.Default().WithSizings(rs.FitTo(rs.FitBoth), rs.BaseScale(2), rs.SpaceWidth(1), rs.HPadding(5))
	// padding larger than the space clamps the scale to zero
	require.Zero(t, layout.Fit(s, rect).Scale)

	// horizontal line: zero vertical extent does not constrain
	line := []geom.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}}
	s = rs.Default().WithSizings(rs.FitTo(rs.FitVert), rs.BaseScale(2), rs.SpaceHeight(0.1))
	require.Equal(t, 2.0, layout.Fit(s, line).Scale)

	empty := layout.Fit(rs.Default().WithSizings(rs.MinWidth(3)), nil)
	require.Nil(t, empty.Points)
	require.Equal(t, 3.0, empty.Width)
}

func TestMetricsAt(t *testing.T) {
	s := rs.Default().WithWidthPair(func(x float64) float64 { return x / 10 }, rs.Constant(0.5))
	l := layout.Fit(s.WithSizings(rs.BaseScale(5)), rect)
	require.InDelta(t, 0.5, l.Metrics.InnerWidth, 1e-12)
	require.InDelta(t, 0.5, l.Metrics.OuterWidth, 1e-12)
	require.InDelta(t, 0.4, l.Metrics.StartingDotRadius, 1e-12)
	require.InDelta(t, 0.2, l.Metrics.GridDotsRadius, 1e-12)
}
