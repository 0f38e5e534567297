// SPDX-License-Identifier: MIT

// Package geomcache memoizes expensive pattern geometry keyed by the string
// rendersettings.Settings.CacheKey derives.
//
// Guarantees:
//   - Concurrent Get calls for one missing key run compute once; the others
//     wait for that result (golang.org/x/sync/singleflight).
//   - Errors are returned to every waiter and never cached. A panic inside
//     compute is recovered and returned as an error wrapping ErrComputePanic.
//   - Stats counts one miss per compute run and one hit per successful Get
//     that did not compute, so joining an in-flight computation is a hit.
//   - A caller whose ctx ends stops waiting with ctx.Err(); the computation
//     itself keeps running for the remaining waiters and still fills the cache.
//   - WithCapacity bounds the entry count; the oldest insert is evicted first.
//
// Cached values are shared between callers and must be treated as read-only.
package geomcache
