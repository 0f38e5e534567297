// SPDX-License-Identifier: MIT
// Package: hexrender/zappy
//
// zappy.go: sub-hop decomposition with Perlin displacement.
//
// Concurrency:
//   • A Zapper is read-only after NewZapper; Zap is safe from many goroutines.

package zappy

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/katalvlaran/hexrender/geom"
	"github.com/katalvlaran/hexrender/rendersettings"
)

// Noise shape (alpha = persistence divisor, beta = frequency multiplier, n octaves).
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	// DefaultNoiseSeed seeds the Zapper used when none is supplied.
	DefaultNoiseSeed int64 = 0x5eed

	// lattice rows that decorrelate the angle and radius octaves
	angleRow  = 1337.0
	radiusRow = 69420.0
)

// Params are the zappy knobs of a Settings value.
type Params struct {
	Hops                     int
	Variance                 float64
	Speed                    float64
	FlowIrregular            float64
	ReadabilityOffset        float64
	LastSegmentLenProportion float64
}

// ParamsFrom extracts the zappy knobs of s.
func ParamsFrom(s rendersettings.Settings) Params {
	return Params{
		Hops:                     s.Hops(),
		Variance:                 s.Variance(),
		Speed:                    s.Speed(),
		FlowIrregular:            s.FlowIrregular(),
		ReadabilityOffset:        s.ReadabilityOffset(),
		LastSegmentLenProportion: s.LastSegmentLenProportion(),
	}
}

// Zapper owns the noise field used for displacement.
type Zapper struct {
	noise *perlin.Perlin
}

// NewZapper builds a Zapper whose noise field is fixed by noiseSeed.
func NewZapper(noiseSeed int64) *Zapper {
	return &Zapper{noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, noiseSeed)}
}

// Zap returns the jagged version of points.
//
// Edge cases:
//   - no points → nil; one point → a copy of it.
//   - Hops <= 0 → the (readability-adjusted) points unchanged.
func (z *Zapper) Zap(points []geom.Vec2, dupIndices []int, p Params, seed, tick float64) []geom.Vec2 {
	if len(points) == 0 {
		return nil
	}
	pts := readable(points, dupIndices, p.ReadabilityOffset)
	if len(pts) == 1 || p.Hops <= 0 {
		return pts
	}

	hops := float64(p.Hops)
	phase := seed + tick*p.Speed
	lastSeg := len(pts) - 2

	out := make([]geom.Vec2, 0, (len(pts)-1)*(p.Hops+1)+1)
	out = append(out, pts[0])
	for i := 0; i < len(pts)-1; i++ {
		src, dst := pts[i], pts[i+1]
		delta := dst.Sub(src)
		maxVariance := delta.Length() / hops * p.Variance

		maxJ := p.Hops
		if i == lastSeg {
			maxJ = clampInt(int(math.Round(p.LastSegmentLenProportion*hops)), 0, p.Hops)
		}

		fi := float64(i)
		for j := 1; j <= maxJ; j++ {
			progress := float64(j) / (hops + 1)
			pos := src.Add(delta.Mul(progress))

			minor := z.noise.Noise3D(fi, float64(j), math.Sin(phase)) * p.FlowIrregular
			theta := 3 * z.noise.Noise3D(fi+progress+minor-phase, angleRow, 0) * 2 * math.Pi
			r := z.noise.Noise3D(fi+progress-phase, radiusRow, 0) * maxVariance * envelope(progress)

			out = append(out, pos.Add(geom.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}))
			if j == p.Hops {
				out = append(out, dst)
			}
		}
	}

	return out
}

// envelope tapers displacement to zero at both ends of a segment.
func envelope(progress float64) float64 {
	return math.Min(1, 8*(0.5-math.Abs(0.5-progress)))
}

// readable copies points, pulling every revisit back toward its predecessor
// by offset (a fraction of the incoming segment).
func readable(points []geom.Vec2, dupIndices []int, offset float64) []geom.Vec2 {
	out := append([]geom.Vec2(nil), points...)
	if offset == 0 {
		return out
	}
	for _, i := range dupIndices {
		if i <= 0 || i >= len(points) {
			continue
		}
		out[i] = points[i].Lerp(points[i-1], offset)
	}

	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
