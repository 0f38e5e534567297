// SPDX-License-Identifier: MIT

package rendersettings

import (
	"math"
	"strconv"
	"strings"
)

const cacheKeySeparator = "-"

// CacheKey derives the renderer cache key for pattern p drawn with seed.
// Only the start direction, the angle signature, ID and seed participate;
// the result is lower-case, e.g. "east-aqw-default-1.0".
func (s Settings) CacheKey(p Pattern, seed float64) string {
	var b strings.Builder
	b.WriteString(p.StartDirSymbol())
	b.WriteString(cacheKeySeparator)
	b.WriteString(p.AngleSignature())
	b.WriteString(cacheKeySeparator)
	b.WriteString(s.id)
	b.WriteString(cacheKeySeparator)
	b.WriteString(formatSeed(seed))

	return strings.ToLower(b.String())
}

// formatSeed renders a float the way hosts that print doubles as "1.0" do:
// plain decimal with at least one fractional digit for 1e-3 <= |v| < 1e7,
// "d.dddE±n" scientific notation otherwise.
func formatSeed(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		out := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(out, ".") {
			out += ".0"
		}
		return out
	}

	// strconv gives "1.5e+07"; rewrite to "1.5E7".
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(sci, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return sci
	}

	return mantissa + "E" + strconv.Itoa(n)
}
