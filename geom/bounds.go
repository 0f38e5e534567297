// SPDX-License-Identifier: MIT

package geom

import "math"

// Bounds is an axis-aligned box accumulated over a point set.
// The zero value is empty; Extend it with points.
type Bounds struct {
	Min, Max Vec2
	nonEmpty bool
}

// BoundsOf returns the bounds of pts (empty for no points).
func BoundsOf(pts []Vec2) Bounds {
	var b Bounds
	for _, p := range pts {
		b = b.Extend(p)
	}

	return b
}

// Extend returns b grown to contain p.
func (b Bounds) Extend(p Vec2) Bounds {
	if !b.nonEmpty {
		return Bounds{Min: p, Max: p, nonEmpty: true}
	}
	b.Min = Vec2{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)}
	b.Max = Vec2{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)}

	return b
}

// Empty reports whether no point was ever added.
func (b Bounds) Empty() bool { return !b.nonEmpty }

// Width is Max.X-Min.X (0 when empty).
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height is Max.Y-Min.Y (0 when empty).
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Center is the midpoint of the box.
func (b Bounds) Center() Vec2 { return b.Min.Lerp(b.Max, 0.5) }
