// SPDX-License-Identifier: MIT
// Package: hexrender/rendersettings
//
// types.go: FitAxis, Provider and the Pattern contract.

package rendersettings

import (
	"fmt"
	"strings"
)

// FitAxis selects which axes the renderer must fit a pattern into.
// The zero value is FitNone.
type FitAxis int

const (
	// FitNone fits neither axis; the pattern is drawn at its base scale.
	FitNone FitAxis = iota
	// FitHor fits the width only.
	FitHor
	// FitVert fits the height only.
	FitVert
	// FitBoth fits width and height.
	FitBoth
)

var fitAxisNames = [...]string{
	FitNone: "NONE",
	FitHor:  "HOR",
	FitVert: "VERT",
	FitBoth: "BOTH",
}

// HorFit reports whether SpaceWidth constrains the scale.
func (a FitAxis) HorFit() bool { return a == FitHor || a == FitBoth }

// VertFit reports whether SpaceHeight constrains the scale.
func (a FitAxis) VertFit() bool { return a == FitVert || a == FitBoth }

// Valid reports whether a is one of the four declared axes.
func (a FitAxis) Valid() bool { return a >= FitNone && a <= FitBoth }

// String returns the upper-case axis name, e.g. "BOTH".
func (a FitAxis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("FitAxis(%d)", int(a))
	}

	return fitAxisNames[a]
}

// ParseFitAxis maps a case-insensitive name ("none", "hor", "vert", "both")
// to its FitAxis.
func ParseFitAxis(name string) (FitAxis, error) {
	for a, n := range fitAxisNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return FitAxis(a), nil
		}
	}

	return FitNone, fmt.Errorf("ParseFitAxis(%q): %w", name, ErrUnknownFitAxis)
}

// Provider maps the current render scale to a derived visual parameter
// (a stroke width or a dot radius). Providers MUST be pure: renderer caches
// keyed by scale rely on it.
type Provider func(scale float64) float64

// Constant returns a Provider that ignores the scale and yields v.
func Constant(v float64) Provider {
	return func(float64) float64 { return v }
}

// Scaled returns a Provider yielding p(scale)*factor.
// The returned closure captures p itself, not whatever p is replaced by later.
func Scaled(p Provider, factor float64) Provider {
	return func(scale float64) float64 { return p(scale) * factor }
}

// Pattern is the view of a hex pattern CacheKey needs. Both methods must be
// deterministic for a given logical pattern.
type Pattern interface {
	// StartDirSymbol names the first move direction, e.g. "EAST".
	StartDirSymbol() string
	// AngleSignature is the canonical turn sequence, e.g. "aqw".
	AngleSignature() string
}
