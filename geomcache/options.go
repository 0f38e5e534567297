// SPDX-License-Identifier: MIT

package geomcache

import "fmt"

// Option customizes a Cache at construction.
type Option func(*config)

type config struct {
	capacity int // 0 = unbounded
}

// WithCapacity bounds the number of cached entries; 0 means unbounded.
// Panics on n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("geomcache: WithCapacity(%d)", n))
	}
	return func(c *config) {
		c.capacity = n
	}
}
