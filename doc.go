// Package hexrender configures and lays out hex-grid patterns for drawing:
// how a pattern is fitted into a box, how thick its strokes and dots are at
// the current scale, and how its "zappy" lightning-style stroke jitters.
//
// 🚀 What's inside?
//
//	rendersettings/ the immutable Settings value, copy-on-write overrides,
//	                Providers of the scale and the renderer cache key
//	hexpattern/     directions, turns and the Pattern value (start
//	                direction + angle signature)
//	geom/           2D vectors and bounds
//	layout/         fitting unit-spaced points into the Settings box
//	zappy/          Perlin-jittered sub-hop decomposition of a polyline
//	geomcache/      a keyed memo with de-duplicated concurrent misses
//	patternrender/  a renderer tying the above together per tick
//	cmd/hexpreview  a terminal preview of animated patterns
//
// ✨ The rules that matter:
//
//   - A Settings is never mutated; every WithX returns a new value with a
//     fresh ID "<family>_<uuid>", so caches never confuse two variants.
//   - Named(id) pins an ID when a caller wants a stable family identity.
//   - CacheKey(pattern, seed) depends only on the start direction, the
//     angle signature, the ID and the seed.
//
// Quick example:
//
//	p := hexpattern.MustFromAngles("aqw", hexpattern.East)
//	rendersettings.Default().CacheKey(p, 1.0) // "east-aqw-default-1.0"
//
//	go get github.com/katalvlaran/hexrender
package hexrender
