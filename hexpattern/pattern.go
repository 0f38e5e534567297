// SPDX-License-Identifier: MIT
// Package: hexrender/hexpattern
//
// pattern.go: the Pattern value and its derived geometry.
//
// Contract:
//   • A Pattern never draws the same grid segment twice (ErrDuplicateSegment).
//   • Positions()[0] is the origin; there are len(angles)+2 positions.
//   • StartDirSymbol/AngleSignature are the pattern's identity for caching.

package hexpattern

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexrender/geom"
)

// Pattern is a start direction plus a sequence of relative turns.
type Pattern struct {
	startDir HexDir
	angles   []HexAngle
}

// segment is an undirected grid edge, stored with its endpoints ordered.
type segment struct{ a, b HexCoord }

func newSegment(a, b HexCoord) segment {
	if b.Q < a.Q || (b.Q == a.Q && b.R < a.R) {
		a, b = b, a
	}

	return segment{a, b}
}

// New builds a pattern from explicit turns.
func New(startDir HexDir, angles ...HexAngle) (Pattern, error) {
	if !startDir.Valid() {
		return Pattern{}, fmt.Errorf("New(%v): %w", startDir, ErrUnknownDir)
	}
	for i, a := range angles {
		if !a.Valid() {
			return Pattern{}, fmt.Errorf("New(%v): angle %d is %v: %w", startDir, i, a, ErrUnknownAngle)
		}
	}
	p := Pattern{startDir: startDir, angles: append([]HexAngle(nil), angles...)}

	seen := make(map[segment]struct{}, len(angles)+1)
	cursor := HexCoord{}
	heading := startDir
	for i := -1; i < len(p.angles); i++ {
		if i >= 0 {
			heading = heading.RotatedBy(p.angles[i])
		}
		next := cursor.Step(heading)
		seg := newSegment(cursor, next)
		if _, dup := seen[seg]; dup {
			return Pattern{}, fmt.Errorf("New(%v %s): move %d: %w", startDir, p.AngleSignature(), i+1, ErrDuplicateSegment)
		}
		seen[seg] = struct{}{}
		cursor = next
	}

	return p, nil
}

// FromAngles parses a signature such as "qaq" into a pattern.
func FromAngles(signature string, startDir HexDir) (Pattern, error) {
	angles := make([]HexAngle, 0, len(signature))
	for _, c := range signature {
		a, err := AngleFromLetter(c)
		if err != nil {
			return Pattern{}, fmt.Errorf("FromAngles(%q): %w", signature, err)
		}
		angles = append(angles, a)
	}

	return New(startDir, angles...)
}

// MustFromAngles is FromAngles for tests and fixed tables; it panics on error.
func MustFromAngles(signature string, startDir HexDir) Pattern {
	p, err := FromAngles(signature, startDir)
	if err != nil {
		panic(err)
	}

	return p
}

// StartDir returns the first move direction.
func (p Pattern) StartDir() HexDir { return p.startDir }

// Angles returns a copy of the turn sequence.
func (p Pattern) Angles() []HexAngle { return append([]HexAngle(nil), p.angles...) }

// StartDirSymbol returns the start direction name, e.g. "EAST".
func (p Pattern) StartDirSymbol() string { return p.startDir.String() }

// AngleSignature returns the turn letters, e.g. "aqw".
func (p Pattern) AngleSignature() string {
	var b strings.Builder
	b.Grow(len(p.angles))
	for _, a := range p.angles {
		b.WriteByte(a.Letter())
	}

	return b.String()
}

// String renders p as "HexPattern(EAST aqw)".
func (p Pattern) String() string {
	return "HexPattern(" + p.StartDirSymbol() + " " + p.AngleSignature() + ")"
}

// Positions returns every visited grid point in drawing order, origin first.
func (p Pattern) Positions() []HexCoord {
	out := make([]HexCoord, 0, len(p.angles)+2)
	cursor := HexCoord{}
	out = append(out, cursor)

	heading := p.startDir
	cursor = cursor.Step(heading)
	out = append(out, cursor)
	for _, a := range p.angles {
		heading = heading.RotatedBy(a)
		cursor = cursor.Step(heading)
		out = append(out, cursor)
	}

	return out
}

// Points maps Positions to render space with the given grid spacing.
func (p Pattern) Points(spacing float64) []geom.Vec2 {
	pos := p.Positions()
	out := make([]geom.Vec2, len(pos))
	for i, c := range pos {
		x, y := c.ToCartesian(spacing)
		out[i] = geom.Vec2{X: x, Y: y}
	}

	return out
}

// DuplicateIndices returns the indices into Positions of points that were
// already visited earlier in the pattern, ascending.
func (p Pattern) DuplicateIndices() []int {
	seen := make(map[HexCoord]struct{}, len(p.angles)+2)
	var dups []int
	for i, c := range p.Positions() {
		if _, ok := seen[c]; ok {
			dups = append(dups, i)
			continue
		}
		seen[c] = struct{}{}
	}

	return dups
}
