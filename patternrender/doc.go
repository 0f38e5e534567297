// SPDX-License-Identifier: MIT

// Package patternrender is the renderer-side consumer of rendersettings: it
// fits a hexpattern.Pattern per Settings, memoizes the static geometry under
// Settings.CacheKey and produces per-tick zappy frames from it.
//
// Only the static layout is cached. Zappy points depend on the tick and are
// recomputed for every Frame call.
//
//	r := patternrender.New()
//	f, err := r.Frame(ctx, settings, pattern, seed, tick)
package patternrender
