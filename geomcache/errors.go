// SPDX-License-Identifier: MIT

package geomcache

import "errors"

// ErrComputePanic wraps a panic raised by a compute function. Like any other
// compute error it reaches every waiter and is never cached.
var ErrComputePanic = errors.New("geomcache: compute panicked")
