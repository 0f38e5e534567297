// SPDX-License-Identifier: MIT
// Package: hexrender/rendersettings
//
// settings.go: the Settings value, its defaults and copy-on-write identity.
//
// Contract:
//   • Settings is passed and returned by value; no method mutates its receiver.
//   • Every derivation goes through copy(), which re-derives the ID.
//   • Providers are shared by reference between copies, never re-executed.

package rendersettings

import (
	"strings"

	"github.com/google/uuid"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultID                       = "default"
	DefaultSpace                    = 1.0
	DefaultInnerWidth               = 0.1
	DefaultOuterWidth               = 0.15
	DefaultHops                     = 10
	DefaultVariance                 = 0.5
	DefaultFlowIrregular            = 0.2
	DefaultLastSegmentLenProportion = 1.0

	// StartingDotFactor and GridDotsFactor derive dot radii from the inner width.
	StartingDotFactor = 0.8
	GridDotsFactor    = 0.4
)

// idSeparator splits an ID into its family and its unique suffix.
const idSeparator = "_"

// Settings describes how one pattern is fitted, stroked and zapped.
// Build it with Default and derive variants with the WithX methods.
type Settings struct {
	fitAxis FitAxis
	id      string

	// All measurements are in the units of whatever transform the renderer draws with.
	baseScale float64 // distance between two adjacent grid points before any fit
	minWidth  float64
	minHeight float64

	// Only consulted on fitted axes.
	spaceWidth  float64
	spaceHeight float64

	// Applied regardless of the fit axis.
	hPadding float64
	vPadding float64

	innerWidth        Provider
	outerWidth        Provider
	startingDotRadius Provider
	gridDotsRadius    Provider

	// Zappy line tuning.
	hops                     int
	variance                 float64
	speed                    float64
	flowIrregular            float64
	readabilityOffset        float64
	lastSegmentLenProportion float64
}

// defaultSettings is the process-wide base; Default hands out copies of the value.
var defaultSettings = newDefault()

// Default returns the process-wide default settings with ID "default".
func Default() Settings {
	return defaultSettings
}

func newDefault() Settings {
	inner := Constant(DefaultInnerWidth)

	return Settings{
		fitAxis:     FitNone,
		id:          DefaultID,
		spaceWidth:  DefaultSpace,
		spaceHeight: DefaultSpace,
		innerWidth:  inner,
		outerWidth:  Constant(DefaultOuterWidth),
		// Bound to this inner provider; later inner overrides do not reach them.
		startingDotRadius:        Scaled(inner, StartingDotFactor),
		gridDotsRadius:           Scaled(inner, GridDotsFactor),
		hops:                     DefaultHops,
		variance:                 DefaultVariance,
		flowIrregular:            DefaultFlowIrregular,
		lastSegmentLenProportion: DefaultLastSegmentLenProportion,
	}
}

// copy returns s with every field carried over and a new ID of the form
// "<family>_<uuid>". An ID without '_' yields the empty family.
func (s Settings) copy() Settings {
	c := s
	c.id = family(s.id) + idSeparator + uuid.NewString()

	return c
}

// family returns the part of id before its first '_', or "" when there is none.
func family(id string) string {
	if i := strings.Index(id, idSeparator); i >= 0 {
		return id[:i]
	}

	return ""
}

// WithSizings returns a copy with the given sizing overrides applied.
// Values are not range-checked; clamping is the renderer's job.
func (s Settings) WithSizings(opts ...SizingOption) Settings {
	c := s.copy()
	apply(&c, opts)

	return c
}

// WithWidths returns a copy with the given provider overrides applied.
// Dot radii are never re-derived here: replacing only the inner width keeps
// the previous dot-radius providers. Use WithWidthPair to re-derive them.
func (s Settings) WithWidths(opts ...WidthOption) Settings {
	c := s.copy()
	apply(&c, opts)

	return c
}

// WithWidthPair overrides the inner and outer widths. A non-nil inner also
// replaces the dot radii with inner*StartingDotFactor and inner*GridDotsFactor.
// A nil inner leaves the inner width and both dot radii untouched; a nil
// outer leaves the outer width untouched.
func (s Settings) WithWidthPair(inner, outer Provider) Settings {
	opts := []WidthOption{InnerWidth(inner), OuterWidth(outer)}
	if inner != nil {
		opts = append(opts,
			StartingDotRadius(Scaled(inner, StartingDotFactor)),
			GridDotsRadius(Scaled(inner, GridDotsFactor)),
		)
	}

	return s.WithWidths(opts...)
}

// WithZappySettings returns a copy with the given zappy overrides applied.
func (s Settings) WithZappySettings(opts ...ZappyOption) Settings {
	c := s.copy()
	apply(&c, opts)

	return c
}

// apply runs opts in order on c; later options win and nil options are skipped.
func apply[O ~func(*Settings)](c *Settings, opts []O) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}

// Named returns a copy whose ID is exactly id, bypassing the unique suffix.
// The caller asserts a stable family identity: equal names share cache keys.
func (s Settings) Named(id string) Settings {
	c := s.copy()
	c.id = id

	return c
}

// --- accessors ---------------------------------------------------------------

func (s Settings) FitAxis() FitAxis     { return s.fitAxis }
func (s Settings) ID() string           { return s.id }
func (s Settings) BaseScale() float64   { return s.baseScale }
func (s Settings) MinWidth() float64    { return s.minWidth }
func (s Settings) MinHeight() float64   { return s.minHeight }
func (s Settings) SpaceWidth() float64  { return s.spaceWidth }
func (s Settings) SpaceHeight() float64 { return s.spaceHeight }
func (s Settings) HPadding() float64    { return s.hPadding }
func (s Settings) VPadding() float64    { return s.vPadding }

// Family is the part of ID before its first '_' ("" when ID has none).
// Every copy derived from s keeps this family unless renamed with Named.
func (s Settings) Family() string { return family(s.id) }

// Provider accessors never return nil: a field left unset (the zero
// Settings) reads as the matching default provider.
func (s Settings) InnerWidth() Provider { return orDefault(s.innerWidth, defaultSettings.innerWidth) }
func (s Settings) OuterWidth() Provider { return orDefault(s.outerWidth, defaultSettings.outerWidth) }
func (s Settings) StartingDotRadius() Provider {
	return orDefault(s.startingDotRadius, defaultSettings.startingDotRadius)
}
func (s Settings) GridDotsRadius() Provider {
	return orDefault(s.gridDotsRadius, defaultSettings.gridDotsRadius)
}

func orDefault(p, def Provider) Provider {
	if p == nil {
		return def
	}

	return p
}

func (s Settings) Hops() int                         { return s.hops }
func (s Settings) Variance() float64                 { return s.variance }
func (s Settings) Speed() float64                    { return s.speed }
func (s Settings) FlowIrregular() float64            { return s.flowIrregular }
func (s Settings) ReadabilityOffset() float64        { return s.readabilityOffset }
func (s Settings) LastSegmentLenProportion() float64 { return s.lastSegmentLenProportion }
