package hexpattern_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexrender/geom"
	"github.com/katalvlaran/hexrender/hexpattern"
	"github.com/katalvlaran/hexrender/rendersettings"
)

// compile-time check: patterns feed CacheKey directly.
var _ rendersettings.Pattern = hexpattern.Pattern{}

func TestRotatedBy(t *testing.T) {
	require.Equal(t, hexpattern.East, hexpattern.NorthEast.RotatedBy(hexpattern.Right))
	require.Equal(t, hexpattern.NorthWest, hexpattern.NorthEast.RotatedBy(hexpattern.Left))
	require.Equal(t, hexpattern.West, hexpattern.East.RotatedBy(hexpattern.Back))
	require.Equal(t, hexpattern.SouthWest, hexpattern.NorthWest.RotatedBy(hexpattern.LeftBack))
	for d := hexpattern.NorthEast; d <= hexpattern.NorthWest; d++ {
		require.Equal(t, d, d.RotatedBy(hexpattern.Forward))
	}
}

func TestParseHexDir(t *testing.T) {
	for in, want := range map[string]hexpattern.HexDir{
		"NORTH_EAST": hexpattern.NorthEast,
		"east":       hexpattern.East,
		"southWest":  hexpattern.SouthWest,
		" west ":     hexpattern.West,
	} {
		got, err := hexpattern.ParseHexDir(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := hexpattern.ParseHexDir("up")
	require.ErrorIs(t, err, hexpattern.ErrUnknownDir)
}

func TestFromAngles_Signature(t *testing.T) {
	p, err := hexpattern.FromAngles("aqw", hexpattern.East)
	require.NoError(t, err)
	require.Equal(t, hexpattern.East, p.StartDir())
	require.Equal(t, "EAST", p.StartDirSymbol())
	require.Equal(t, "aqw", p.AngleSignature())
	require.Equal(t, "HexPattern(EAST aqw)", p.String())
	require.Equal(t, []hexpattern.HexAngle{hexpattern.LeftBack, hexpattern.Left, hexpattern.Forward}, p.Angles())

	upper, err := hexpattern.FromAngles("AQW", hexpattern.East)
	require.NoError(t, err)
	require.Equal(t, "aqw", upper.AngleSignature())

	require.Equal(t, "east-aqw-default-1.0", rendersettings.Default().CacheKey(p, 1.0))
}

func TestFromAngles_Errors(t *testing.T) {
	cases := []struct {
		name string
		sig  string
		dir  hexpattern.HexDir
		err  error
	}{
		{"UnknownLetter", "qx", hexpattern.East, hexpattern.ErrUnknownAngle},
		{"ImmediateBack", "s", hexpattern.East, hexpattern.ErrDuplicateSegment},
		{"RetraceLater", "qaqa", hexpattern.NorthEast, hexpattern.ErrDuplicateSegment},
		{"BadDir", "w", hexpattern.HexDir(7), hexpattern.ErrUnknownDir},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hexpattern.FromAngles(tc.sig, tc.dir)
			require.ErrorIs(t, err, tc.err)
		})
	}
	require.Panics(t, func() { hexpattern.MustFromAngles("s", hexpattern.East) })

	_, err := hexpattern.New(hexpattern.East, hexpattern.Left, hexpattern.HexAngle(6))
	require.ErrorIs(t, err, hexpattern.ErrUnknownAngle)
}

func TestPositions(t *testing.T) {
	p := hexpattern.MustFromAngles("aqw", hexpattern.East)
	require.Equal(t, []hexpattern.HexCoord{
		{Q: 0, R: 0}, {Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1}, {Q: -1, R: -1},
	}, p.Positions())
	require.Empty(t, p.DuplicateIndices())

	empty := hexpattern.MustFromAngles("", hexpattern.SouthEast)
	require.Equal(t, []hexpattern.HexCoord{{Q: 0, R: 0}, {Q: 0, R: 1}}, empty.Positions())
}

func TestDuplicateIndices(t *testing.T) {
	// NE, left, left-back, left: closes back onto the origin.
	p := hexpattern.MustFromAngles("qaq", hexpattern.NorthEast)
	pos := p.Positions()
	require.Len(t, pos, 5)
	require.Equal(t, pos[0], pos[4])
	require.Equal(t, []int{4}, p.DuplicateIndices())
}

func TestPoints_UnitSpacing(t *testing.T) {
	p := hexpattern.MustFromAngles("aqw", hexpattern.East)
	pts := p.Points(1)
	require.Len(t, pts, 5)
	require.Equal(t, geom.Vec2{}, pts[0])
	for i := 1; i < len(pts); i++ {
		require.InDelta(t, 1, pts[i-1].Dist(pts[i]), 1e-12, "segment %d", i)
	}
	require.InDelta(t, 0.5, pts[2].X, 1e-12)
	require.InDelta(t, -math.Sqrt(3)/2, pts[2].Y, 1e-12)

	scaled := p.Points(10)
	require.InDelta(t, 10, scaled[0].Dist(scaled[1]), 1e-9)
}
