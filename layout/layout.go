// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"github.com/katalvlaran/hexrender/geom"
	"github.com/katalvlaran/hexrender/rendersettings"
)

// Metrics are the provider outputs evaluated at a layout's scale.
type Metrics struct {
	InnerWidth        float64
	OuterWidth        float64
	StartingDotRadius float64
	GridDotsRadius    float64
}

// Layout is a fitted pattern: the scale used, the box it occupies and the
// translated points (box origin at the top-left).
type Layout struct {
	Scale   float64
	Width   float64
	Height  float64
	Points  []geom.Vec2
	Metrics Metrics
}

// Fit scales and centres unit (points one grid step apart) per s.
func Fit(s rendersettings.Settings, unit []geom.Vec2) Layout {
	b := geom.BoundsOf(unit)
	extentX, extentY := b.Width(), b.Height()

	scale := s.BaseScale()
	axis := s.FitAxis()
	if axis.HorFit() && extentX > 0 {
		scale = math.Min(scale, available(s.SpaceWidth(), s.HPadding())/extentX)
	}
	if axis.VertFit() && extentY > 0 {
		scale = math.Min(scale, available(s.SpaceHeight(), s.VPadding())/extentY)
	}
	scale = math.Max(scale, 0)

	l := Layout{
		Scale:   scale,
		Width:   math.Max(s.MinWidth(), extentX*scale) + 2*s.HPadding(),
		Height:  math.Max(s.MinHeight(), extentY*scale) + 2*s.VPadding(),
		Metrics: MetricsAt(s, scale),
	}
	if b.Empty() {
		return l
	}

	// shift so the scaled pattern centre lands on the box centre
	offset := geom.Vec2{X: l.Width / 2, Y: l.Height / 2}.Sub(b.Center().Mul(scale))
	l.Points = make([]geom.Vec2, len(unit))
	for i, p := range unit {
		l.Points[i] = p.Mul(scale).Add(offset)
	}

	return l
}

// MetricsAt evaluates the four providers of s at scale.
func MetricsAt(s rendersettings.Settings, scale float64) Metrics {
	return Metrics{
		InnerWidth:        s.InnerWidth()(scale),
		OuterWidth:        s.OuterWidth()(scale),
		StartingDotRadius: s.StartingDotRadius()(scale),
		GridDotsRadius:    s.GridDotsRadius()(scale),
	}
}

func available(space, padding float64) float64 {
	return math.Max(space-2*padding, 0)
}
