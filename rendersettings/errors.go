// SPDX-License-Identifier: MIT

package rendersettings

import "errors"

var (
	// ErrUnknownFitAxis indicates a fit axis name outside NONE/HOR/VERT/BOTH.
	ErrUnknownFitAxis = errors.New("rendersettings: unknown fit axis")
	// ErrUnknownPreset indicates Lookup was asked for a name never registered.
	ErrUnknownPreset = errors.New("rendersettings: unknown preset")
	// ErrEmptyPresetName indicates Register was called with an empty name.
	ErrEmptyPresetName = errors.New("rendersettings: preset name must not be empty")
)
