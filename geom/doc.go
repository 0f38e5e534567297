// SPDX-License-Identifier: MIT

// Package geom provides the small 2D vector and bounding-box types shared by
// the pattern, layout and zappy packages.
package geom
