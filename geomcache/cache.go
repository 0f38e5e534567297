// SPDX-License-Identifier: MIT
// Package: hexrender/geomcache
//
// cache.go: a keyed, capacity-bounded memo with de-duplicated misses.
//
// Concurrency:
//   • entries/order are guarded by mu; counters are atomic.
//   • compute runs outside mu, inside a singleflight call per key.
//   • a panic in compute is recovered into ErrComputePanic.
//
// Counters:
//   • Misses counts compute invocations.
//   • Hits counts every successful Get that did not run compute, including
//     callers that joined a flight already in progress.

package geomcache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// Cache memoizes values of type V by key.
type Cache[V any] struct {
	mu       sync.RWMutex
	entries  map[string]V
	order    []string // insertion order, oldest first
	capacity int

	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New returns an empty cache.
func New[V any](opts ...Option) *Cache[V] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Cache[V]{
		entries:  make(map[string]V),
		capacity: cfg.capacity,
	}
}

// Get returns the value cached under key, computing and storing it on a miss.
func (c *Cache[V]) Get(ctx context.Context, key string, compute func(context.Context) (V, error)) (V, error) {
	var zero V
	if v, ok := c.lookup(key); ok {
		c.hits.Add(1)
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// the flight must outlive any single waiter's cancellation
	flightCtx := context.WithoutCancel(ctx)
	ran := false
	ch := c.group.DoChan(key, func() (interface{}, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		ran = true
		c.misses.Add(1)
		v, err := c.compute(flightCtx, key, compute)
		if err != nil {
			return nil, err
		}
		c.store(key, v)

		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		// ran is written by the flight before the result is delivered
		if !ran {
			c.hits.Add(1)
		}
		return res.Val.(V), nil
	}
}

// compute runs fn, turning a panic into an ErrComputePanic error.
func (c *Cache[V]) compute(ctx context.Context, key string, fn func(context.Context) (V, error)) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("geomcache: compute %q: %w: %v", key, ErrComputePanic, r)
		}
	}()

	return fn(ctx)
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Purge drops every entry; counters are kept.
func (c *Cache[V]) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]V)
	c.order = c.order[:0]
	c.mu.Unlock()
}

// Stats returns the current counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Len: c.Len()}
}

func (c *Cache[V]) lookup(key string) (V, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()

	return v, ok
}

func (c *Cache[V]) store(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = v
	for c.capacity > 0 && len(c.entries) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}
