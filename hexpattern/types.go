// SPDX-License-Identifier: MIT
// Package: hexrender/hexpattern
//
// types.go: directions, turns and axial coordinates.
//
// Determinism:
//   • HexDir and HexAngle ordinals are stable; RotatedBy is (dir+angle) mod 6.
//   • Clockwise on screen (y down) is the "right" turn.

package hexpattern

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// HexDir is one of the six absolute move directions.
type HexDir int

const (
	NorthEast HexDir = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
)

const dirCount = 6

var dirNames = [dirCount]string{"NORTH_EAST", "EAST", "SOUTH_EAST", "SOUTH_WEST", "WEST", "NORTH_WEST"}

// axial deltas per direction, indexed by HexDir.
var dirDeltas = [dirCount]HexCoord{
	NorthEast: {Q: 1, R: -1},
	East:      {Q: 1, R: 0},
	SouthEast: {Q: 0, R: 1},
	SouthWest: {Q: -1, R: 1},
	West:      {Q: -1, R: 0},
	NorthWest: {Q: 0, R: -1},
}

// Valid reports whether d is one of the six directions.
func (d HexDir) Valid() bool { return d >= NorthEast && d <= NorthWest }

// String returns the upper snake-case name, e.g. "NORTH_EAST".
func (d HexDir) String() string {
	if !d.Valid() {
		return fmt.Sprintf("HexDir(%d)", int(d))
	}

	return dirNames[d]
}

// RotatedBy returns the direction after turning by a.
func (d HexDir) RotatedBy(a HexAngle) HexDir {
	return HexDir((int(d) + int(a)) % dirCount)
}

// Delta returns the axial step for one move in direction d.
func (d HexDir) Delta() HexCoord { return dirDeltas[d] }

// ParseHexDir accepts either "NORTH_EAST" or "northeast" style names.
func ParseHexDir(name string) (HexDir, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for i, n := range dirNames {
		if strings.ReplaceAll(n, "_", "") == norm {
			return HexDir(i), nil
		}
	}

	return NorthEast, fmt.Errorf("ParseHexDir(%q): %w", name, ErrUnknownDir)
}

// HexAngle is a turn relative to the current heading.
type HexAngle int

const (
	Forward HexAngle = iota
	Right
	RightBack
	Back
	LeftBack
	Left
)

// angleLetters indexed by HexAngle.
const angleLetters = "wedsaq"

// Valid reports whether a is one of the six turns.
func (a HexAngle) Valid() bool { return a >= Forward && a <= Left }

// Letter returns the signature letter for a.
func (a HexAngle) Letter() byte { return angleLetters[a] }

// String returns the signature letter as a string.
func (a HexAngle) String() string {
	if !a.Valid() {
		return fmt.Sprintf("HexAngle(%d)", int(a))
	}

	return string(a.Letter())
}

// AngleFromLetter maps a signature letter (case-insensitive) to its HexAngle.
func AngleFromLetter(c rune) (HexAngle, error) {
	i := strings.IndexRune(angleLetters, unicode.ToLower(c))
	if i < 0 {
		return Forward, fmt.Errorf("AngleFromLetter(%q): %w", c, ErrUnknownAngle)
	}

	return HexAngle(i), nil
}

// HexCoord is an axial grid coordinate.
type HexCoord struct {
	Q, R int
}

// Add returns c+o.
func (c HexCoord) Add(o HexCoord) HexCoord { return HexCoord{c.Q + o.Q, c.R + o.R} }

// Step returns the neighbour of c in direction d.
func (c HexCoord) Step(d HexDir) HexCoord { return c.Add(d.Delta()) }

// ToCartesian maps c to render space with adjacent points spacing apart.
func (c HexCoord) ToCartesian(spacing float64) (x, y float64) {
	x = spacing * (float64(c.Q) + float64(c.R)/2)
	y = spacing * (math.Sqrt(3) / 2) * float64(c.R)

	return x, y
}
