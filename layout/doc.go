// SPDX-License-Identifier: MIT

// Package layout places a pattern's unit-spaced points into the box described
// by a rendersettings.Settings value.
//
// Rules:
//   - The scale starts at BaseScale. On every fitted axis it shrinks (it never
//     grows) until the pattern extent fits the space minus both paddings.
//   - Available space below zero is treated as zero; an axis with zero extent
//     never constrains the scale.
//   - The box is max(MinWidth, extent·scale) + 2·HPadding wide (likewise tall)
//     and the pattern is centred in it.
//   - Stroke widths and dot radii come from the Settings providers at the
//     final scale.
package layout
