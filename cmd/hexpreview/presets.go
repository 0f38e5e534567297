// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	rs "github.com/katalvlaran/hexrender/rendersettings"
)

// presetFile is the YAML layout of -presets:
//
//	presets:
//	  scroll:
//	    fit_axis: both
//	    base_scale: 6
//	    inner_width: 0.3
//	    hops: 6
type presetFile struct {
	Presets map[string]presetEntry `yaml:"presets"`
}

// presetEntry holds optional overrides; absent keys keep the base value.
type presetEntry struct {
	FitAxis     *string  `yaml:"fit_axis"`
	BaseScale   *float64 `yaml:"base_scale"`
	MinWidth    *float64 `yaml:"min_width"`
	MinHeight   *float64 `yaml:"min_height"`
	HPadding    *float64 `yaml:"h_padding"`
	VPadding    *float64 `yaml:"v_padding"`
	InnerWidth  *float64 `yaml:"inner_width"`
	OuterWidth  *float64 `yaml:"outer_width"`
	Hops        *int     `yaml:"hops"`
	Variance    *float64 `yaml:"variance"`
	Speed       *float64 `yaml:"speed"`
	Flow        *float64 `yaml:"flow_irregular"`
	Readability *float64 `yaml:"readability_offset"`
	LastSegment *float64 `yaml:"last_segment_len_proportion"`
}

// apply derives a Settings from base with the entry's overrides.
func (p presetEntry) apply(base rs.Settings) (rs.Settings, error) {
	var sizing []rs.SizingOption
	if p.FitAxis != nil {
		axis, err := rs.ParseFitAxis(*p.FitAxis)
		if err != nil {
			return rs.Settings{}, err
		}
		sizing = append(sizing, rs.FitTo(axis))
	}
	sizing = appendIf(sizing, p.BaseScale, rs.BaseScale)
	sizing = appendIf(sizing, p.MinWidth, rs.MinWidth)
	sizing = appendIf(sizing, p.MinHeight, rs.MinHeight)
	sizing = appendIf(sizing, p.HPadding, rs.HPadding)
	sizing = appendIf(sizing, p.VPadding, rs.VPadding)

	var zap []rs.ZappyOption
	zap = appendIf(zap, p.Hops, rs.Hops)
	zap = appendIf(zap, p.Variance, rs.Variance)
	zap = appendIf(zap, p.Speed, rs.Speed)
	zap = appendIf(zap, p.Flow, rs.FlowIrregular)
	zap = appendIf(zap, p.Readability, rs.ReadabilityOffset)
	zap = appendIf(zap, p.LastSegment, rs.LastSegmentLenProportion)

	s := base.WithSizings(sizing...).WithZappySettings(zap...)
	if p.InnerWidth != nil || p.OuterWidth != nil {
		s = s.WithWidthPair(constantOrNil(p.InnerWidth), constantOrNil(p.OuterWidth))
	}

	return s, nil
}

func appendIf[T any, O any](opts []O, v *T, mk func(T) O) []O {
	if v == nil {
		return opts
	}

	return append(opts, mk(*v))
}

func constantOrNil(v *float64) rs.Provider {
	if v == nil {
		return nil
	}

	return rs.Constant(*v)
}

// errNoPresets is returned for a YAML document without a presets map.
var errNoPresets = errors.New("hexpreview: presets file defines no presets")

// loadPresets decodes r and registers every preset on top of base.
func loadPresets(r io.Reader, base rs.Settings, reg *rs.Registry) error {
	var f presetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("loadPresets: %w", err)
	}
	if len(f.Presets) == 0 {
		return errNoPresets
	}

	names := make([]string, 0, len(f.Presets))
	for n := range f.Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		s, err := f.Presets[n].apply(base)
		if err != nil {
			return fmt.Errorf("loadPresets: preset %q: %w", n, err)
		}
		if _, err = reg.Register(n, s); err != nil {
			return fmt.Errorf("loadPresets: preset %q: %w", n, err)
		}
	}

	return nil
}

// builtinPresets are always available, even without -presets.
func builtinPresets(reg *rs.Registry) {
	base := rs.Default()
	_, _ = reg.Register(rs.DefaultID, base.WithSizings(rs.BaseScale(6)))
	_, _ = reg.Register("calm", base.
		WithSizings(rs.BaseScale(6)).
		WithZappySettings(rs.Hops(4), rs.Variance(0.2), rs.Speed(0.02)))
	_, _ = reg.Register("storm", base.
		WithSizings(rs.BaseScale(6)).
		WithZappySettings(rs.Hops(12), rs.Variance(1.2), rs.Speed(0.15), rs.FlowIrregular(0.6)))
}
