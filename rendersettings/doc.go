// SPDX-License-Identifier: MIT

// Package rendersettings holds the immutable configuration that tells a
// pattern renderer how to draw a hex pattern.
//
// 🚀 What is a Settings value?
//
//	A persistent value: every WithX method returns a fresh copy with the
//	requested fields overridden and a fresh cache identity. Nothing is ever
//	mutated in place, so a Settings can be shared between a render goroutine
//	and a UI goroutine without locks. Publish a new value by replacing the
//	reference.
//
// ✨ What it controls:
//   - fitting: FitAxis, space, padding, base scale, minimum box size
//   - strokes: inner/outer width and dot radii as Providers of the scale
//   - zappy lines: hops, variance, speed, flow irregularity, readability
//     offset and the last segment proportion
//   - identity: ID and CacheKey for renderer-side memoization
//
// ⚙️ Usage:
//
//	s := rendersettings.Default().
//		Named("scroll").
//		WithSizings(rendersettings.FitTo(rendersettings.FitBoth),
//			rendersettings.SpaceWidth(64), rendersettings.SpaceHeight(64)).
//		WithWidthPair(rendersettings.Constant(0.2), nil)
//
//	key := s.CacheKey(pattern, 1.0)
//
// Identity rules:
//   - Every derived copy gets ID "<family>_<uuid>", where family is the part
//     of the source ID before its first '_' (empty when the source ID has no
//     '_'; "default" therefore derives to "_<uuid>").
//   - Named(id) pins the ID exactly; two Named("foo") copies share cache keys.
//   - CacheKey only looks at the pattern, the ID and the seed.
//
// Known trap: the default dot-radius providers are bound to the default inner
// width. Replacing the inner width through WithWidths without also passing
// dot-radius providers leaves the old dot radii in place. WithWidthPair
// re-derives them.
//
// The zero Settings is usable but bare: no ID, zero scale and sizes, zero
// hops. Its provider accessors read as the default providers, so nothing
// derived from it hands a nil Provider to a renderer.
package rendersettings
