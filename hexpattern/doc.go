// SPDX-License-Identifier: MIT

// Package hexpattern models a drawable pattern on a hex grid: a starting
// direction followed by a sequence of relative turns.
//
// A pattern is identified by its start direction and its angle signature,
// one letter per turn:
//
//	w forward   e right   d right-back
//	s back      a left-back   q left
//
// so FromAngles("qaq", NorthEast) walks NE, then turns left, left-back, left.
//
// Coordinates are axial (q, r) on a pointy-top grid; Points maps them to
// render space with adjacent grid points exactly `spacing` apart and y
// growing downwards.
//
// Patterns are immutable values and satisfy rendersettings.Pattern.
package hexpattern
