// SPDX-License-Identifier: MIT

package hexpattern

import "errors"

var (
	// ErrUnknownAngle indicates a signature letter outside "wedsaq".
	ErrUnknownAngle = errors.New("hexpattern: unknown angle letter")
	// ErrUnknownDir indicates a direction name that is not one of the six HexDirs.
	ErrUnknownDir = errors.New("hexpattern: unknown direction")
	// ErrDuplicateSegment indicates a move that retraces an already drawn segment.
	ErrDuplicateSegment = errors.New("hexpattern: segment already drawn")
)
