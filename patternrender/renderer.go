// SPDX-License-Identifier: MIT
// Package: hexrender/patternrender
//
// renderer.go: cached layout plus per-tick zappy frames.
//
// Contract:
//   • Geometry for (pattern, settings ID, seed) is computed once per cache key.
//   • Settings are read, never retained beyond the call.
//   • Renderer is safe for concurrent use.

package patternrender

import (
	"context"
	"fmt"
	"log"

	"github.com/katalvlaran/hexrender/geom"
	"github.com/katalvlaran/hexrender/geomcache"
	"github.com/katalvlaran/hexrender/hexpattern"
	"github.com/katalvlaran/hexrender/layout"
	"github.com/katalvlaran/hexrender/rendersettings"
	"github.com/katalvlaran/hexrender/zappy"
)

// Geometry is the cached, tick-independent part of a rendered pattern.
// Treat it as read-only: it is shared between callers.
type Geometry struct {
	Key        string
	Layout     layout.Layout
	Duplicates []int // indices into Layout.Points that revisit a point
}

// Frame is one drawable instant of a pattern.
type Frame struct {
	Geometry *Geometry
	Zappy    []geom.Vec2 // the jagged stroke
	Start    geom.Vec2   // where the starting dot goes
	Dots     []geom.Vec2 // grid dots, one per distinct visited point
}

// Renderer turns patterns into frames.
type Renderer struct {
	cache  *geomcache.Cache[Geometry]
	zapper *zappy.Zapper
	log    *log.Logger
}

// New returns a Renderer with an unbounded cache and the default noise seed.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		cache:  geomcache.New[Geometry](),
		zapper: zappy.NewZapper(zappy.DefaultNoiseSeed),
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Layout returns the fitted geometry for p under s, memoized by s.CacheKey(p, seed).
func (r *Renderer) Layout(ctx context.Context, s rendersettings.Settings, p *hexpattern.Pattern, seed float64) (*Geometry, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	key := s.CacheKey(p, seed)
	pat := *p

	g, err := r.cache.Get(ctx, key, func(context.Context) (Geometry, error) {
		r.log.Printf("patternrender: layout miss key=%s", key)
		return Geometry{
			Key:        key,
			Layout:     layout.Fit(s, pat.Points(1)),
			Duplicates: pat.DuplicateIndices(),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("Layout(%s): %w", key, err)
	}

	return &g, nil
}

// Frame lays out p (cached) and zaps it for the given tick.
func (r *Renderer) Frame(ctx context.Context, s rendersettings.Settings, p *hexpattern.Pattern, seed, tick float64) (Frame, error) {
	g, err := r.Layout(ctx, s, p, seed)
	if err != nil {
		return Frame{}, err
	}

	pts := g.Layout.Points
	f := Frame{
		Geometry: g,
		Zappy:    r.zapper.Zap(pts, g.Duplicates, zappy.ParamsFrom(s), seed, tick),
		Dots:     distinct(pts, g.Duplicates),
	}
	if len(pts) > 0 {
		f.Start = pts[0]
	}

	return f, nil
}

// Stats exposes the geometry cache counters.
func (r *Renderer) Stats() geomcache.Stats { return r.cache.Stats() }

// distinct drops the revisit indices from pts.
func distinct(pts []geom.Vec2, dups []int) []geom.Vec2 {
	skip := make(map[int]struct{}, len(dups))
	for _, i := range dups {
		skip[i] = struct{}{}
	}
	out := make([]geom.Vec2, 0, max(len(pts)-len(skip), 0))
	for i, p := range pts {
		if _, ok := skip[i]; !ok {
			out = append(out, p)
		}
	}

	return out
}
