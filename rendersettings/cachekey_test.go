package rendersettings_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexrender/rendersettings"
)

// TestCacheKey_DefaultExample: the canonical documented key.
func TestCacheKey_DefaultExample(t *testing.T) {
	p := stubPattern{"EAST", "aqw"}
	require.Equal(t, "east-aqw-default-1.0", rendersettings.Default().CacheKey(p, 1.0))
}

// TestCacheKey_SeedFormatting checks how seeds render inside the key.
func TestCacheKey_SeedFormatting(t *testing.T) {
	p := stubPattern{"WEST", ""}
	s := rendersettings.Default()
	cases := []struct {
		seed float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{123.456, "123.456"},
		{0.001, "0.001"},
		{9999999, "9999999.0"},
		{1e7, "1.0e7"},
		{1.5e10, "1.5e10"},
		{0.0001, "1.0e-4"},
		{-2.5e-5, "-2.5e-5"},
		{math.NaN(), "nan"},
		{math.Inf(1), "infinity"},
		{math.Inf(-1), "-infinity"},
	}
	for _, tc := range cases {
		got := s.CacheKey(p, tc.seed)
		assert.Equal(t, "west--default-"+tc.want, got, "seed %v", tc.seed)
	}
}

// TestCacheKey_LowercaseAndIdempotent: output is lower-case and pure.
func TestCacheKey_LowercaseAndIdempotent(t *testing.T) {
	p := stubPattern{"NORTH_WEST", "QAWDE"}
	s := rendersettings.Default().Named("Scroll_Big")
	first := s.CacheKey(p, 42)
	require.Equal(t, strings.ToLower(first), first)
	require.Equal(t, "north_west-qawde-scroll_big-42.0", first)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, s.CacheKey(p, 42))
	}
}

// TestCacheKey_Distinguishes: each input participates.
func TestCacheKey_Distinguishes(t *testing.T) {
	s := rendersettings.Default()
	p := stubPattern{"EAST", "aqw"}
	base := s.CacheKey(p, 1)

	require.NotEqual(t, base, s.CacheKey(stubPattern{"WEST", "aqw"}, 1))
	require.NotEqual(t, base, s.CacheKey(stubPattern{"EAST", "aqe"}, 1))
	require.NotEqual(t, base, s.CacheKey(p, 2))

	// same values, different derivation: distinct identity
	a := s.WithWidthPair(rendersettings.Constant(0.3), nil)
	b := s.WithWidthPair(rendersettings.Constant(0.3), nil)
	require.NotEqual(t, a.CacheKey(p, 1), b.CacheKey(p, 1))
	require.NotEqual(t, base, a.CacheKey(p, 1))
}
