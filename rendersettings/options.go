// SPDX-License-Identifier: MIT
// Package: hexrender/rendersettings
//
// options.go: sparse overrides for the WithX derivations.
//
// Contract:
//   • Each option overrides exactly one field of the fresh copy.
//   • Omitting an option means "keep the current value".
//   • A nil Provider is treated as omitted, never stored.
//   • No option validates ranges; negative padding is a legitimate request.

package rendersettings

// SizingOption overrides one sizing field in WithSizings.
type SizingOption func(*Settings)

// WidthOption overrides one provider field in WithWidths.
type WidthOption func(*Settings)

// ZappyOption overrides one zappy tuning field in WithZappySettings.
type ZappyOption func(*Settings)

// FitTo sets the fit axis. An axis outside the closed FitAxis set is
// treated as absent and leaves the current axis in place.
func FitTo(a FitAxis) SizingOption {
	return func(s *Settings) {
		if a.Valid() {
			s.fitAxis = a
		}
	}
}

// SpaceWidth sets the available width (used only when the axis fits horizontally).
func SpaceWidth(v float64) SizingOption {
	return func(s *Settings) { s.spaceWidth = v }
}

// SpaceHeight sets the available height (used only when the axis fits vertically).
func SpaceHeight(v float64) SizingOption {
	return func(s *Settings) { s.spaceHeight = v }
}

// HPadding sets the horizontal padding.
func HPadding(v float64) SizingOption {
	return func(s *Settings) { s.hPadding = v }
}

// VPadding sets the vertical padding.
func VPadding(v float64) SizingOption {
	return func(s *Settings) { s.vPadding = v }
}

// BaseScale sets the unfitted distance between adjacent grid points.
func BaseScale(v float64) SizingOption {
	return func(s *Settings) { s.baseScale = v }
}

// MinWidth sets the lower bound on the fitted box width.
func MinWidth(v float64) SizingOption {
	return func(s *Settings) { s.minWidth = v }
}

// MinHeight sets the lower bound on the fitted box height.
func MinHeight(v float64) SizingOption {
	return func(s *Settings) { s.minHeight = v }
}

// InnerWidth sets the inner stroke width provider. Nil keeps the current one.
func InnerWidth(p Provider) WidthOption {
	return func(s *Settings) {
		if p != nil {
			s.innerWidth = p
		}
	}
}

// OuterWidth sets the outer stroke width provider. Nil keeps the current one.
func OuterWidth(p Provider) WidthOption {
	return func(s *Settings) {
		if p != nil {
			s.outerWidth = p
		}
	}
}

// StartingDotRadius sets the starting dot radius provider. Nil keeps the current one.
func StartingDotRadius(p Provider) WidthOption {
	return func(s *Settings) {
		if p != nil {
			s.startingDotRadius = p
		}
	}
}

// GridDotsRadius sets the grid dots radius provider. Nil keeps the current one.
func GridDotsRadius(p Provider) WidthOption {
	return func(s *Settings) {
		if p != nil {
			s.gridDotsRadius = p
		}
	}
}

// Hops sets the number of sub-segments per zappy segment.
func Hops(n int) ZappyOption {
	return func(s *Settings) { s.hops = n }
}

// Variance sets the jitter magnitude relative to the hop length.
func Variance(v float64) ZappyOption {
	return func(s *Settings) { s.variance = v }
}

// Speed sets how fast the zappy noise phase advances per tick.
func Speed(v float64) ZappyOption {
	return func(s *Settings) { s.speed = v }
}

// FlowIrregular sets the weight of the minor noise perturbation.
func FlowIrregular(v float64) ZappyOption {
	return func(s *Settings) { s.flowIrregular = v }
}

// ReadabilityOffset sets how far revisited points are pulled back.
func ReadabilityOffset(v float64) ZappyOption {
	return func(s *Settings) { s.readabilityOffset = v }
}

// LastSegmentLenProportion sets the fraction of the final segment that is drawn.
func LastSegmentLenProportion(v float64) ZappyOption {
	return func(s *Settings) { s.lastSegmentLenProportion = v }
}
