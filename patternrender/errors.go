// SPDX-License-Identifier: MIT

package patternrender

import "errors"

// ErrNilPattern indicates Layout or Frame was called without a pattern.
var ErrNilPattern = errors.New("patternrender: pattern is nil")
