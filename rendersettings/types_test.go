package rendersettings_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexrender/rendersettings"
)

// TestFitAxisProjections pins the horFit/vertFit table for all four axes.
func TestFitAxisProjections(t *testing.T) {
	cases := []struct {
		axis      rendersettings.FitAxis
		name      string
		hor, vert bool
	}{
		{rendersettings.FitNone, "NONE", false, false},
		{rendersettings.FitHor, "HOR", true, false},
		{rendersettings.FitVert, "VERT", false, true},
		{rendersettings.FitBoth, "BOTH", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.axis.Valid())
			require.Equal(t, tc.hor, tc.axis.HorFit())
			require.Equal(t, tc.vert, tc.axis.VertFit())
			require.Equal(t, tc.name, tc.axis.String())
		})
	}

	var zero rendersettings.FitAxis
	require.Equal(t, rendersettings.FitNone, zero)
	require.False(t, rendersettings.FitAxis(9).Valid())
	require.Equal(t, "FitAxis(9)", rendersettings.FitAxis(9).String())
}

// TestParseFitAxis accepts any case and rejects unknown names.
func TestParseFitAxis(t *testing.T) {
	for in, want := range map[string]rendersettings.FitAxis{
		"none":   rendersettings.FitNone,
		"Hor":    rendersettings.FitHor,
		"VERT":   rendersettings.FitVert,
		" both ": rendersettings.FitBoth,
	} {
		got, err := rendersettings.ParseFitAxis(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := rendersettings.ParseFitAxis("diagonal")
	require.True(t, errors.Is(err, rendersettings.ErrUnknownFitAxis))
}

// TestScaledCapturesProvider: Scaled binds the provider it was given.
func TestScaledCapturesProvider(t *testing.T) {
	p := rendersettings.Provider(func(x float64) float64 { return x + 1 })
	sc := rendersettings.Scaled(p, 0.5)
	p = rendersettings.Constant(100)
	require.InDelta(t, 1.5, sc(2), 1e-12)
	require.InDelta(t, 100, p(2), 1e-12)
}

// TestRegistry covers register, lookup and the error sentinels.
func TestRegistry(t *testing.T) {
	r := rendersettings.NewRegistry()
	base := rendersettings.Default().WithZappySettings(rendersettings.Hops(4))

	stored, err := r.Register("scroll", base)
	require.NoError(t, err)
	require.Equal(t, "scroll", stored.ID())
	require.Equal(t, 4, stored.Hops())

	got, err := r.Lookup("scroll")
	require.NoError(t, err)
	require.Equal(t, stored.ID(), got.ID())

	_, err = r.Register("", base)
	require.ErrorIs(t, err, rendersettings.ErrEmptyPresetName)

	_, err = r.Lookup("missing")
	require.ErrorIs(t, err, rendersettings.ErrUnknownPreset)

	_, _ = r.Register("ancient", base)
	require.Equal(t, []string{"ancient", "scroll"}, r.Names())
}
