// SPDX-License-Identifier: MIT

package patternrender

import (
	"io"
	"log"

	"github.com/katalvlaran/hexrender/geomcache"
	"github.com/katalvlaran/hexrender/zappy"
)

// Option customizes a Renderer.
type Option func(*Renderer)

// WithLogger routes cache-miss diagnostics to l. Nil keeps the silent default.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithZapper replaces the noise source used for frames. Nil is ignored.
func WithZapper(z *zappy.Zapper) Option {
	return func(r *Renderer) {
		if z != nil {
			r.zapper = z
		}
	}
}

// WithCacheCapacity bounds the geometry cache (0 = unbounded).
func WithCacheCapacity(n int) Option {
	capOpt := geomcache.WithCapacity(n)
	return func(r *Renderer) {
		r.cache = geomcache.New[Geometry](capOpt)
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
