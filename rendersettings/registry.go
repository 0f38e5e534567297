// SPDX-License-Identifier: MIT
// Package: hexrender/rendersettings
//
// registry.go: named base settings ("presets") shared by a host.
//
// Concurrency:
//   • Registry is safe for concurrent use; Settings values are copied in and out.

package rendersettings

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps preset names to named base settings.
type Registry struct {
	mu      sync.RWMutex
	presets map[string]Settings
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]Settings)}
}

// Register stores s under name, pinning its ID to name via Named.
// A later Register with the same name replaces the earlier preset.
func (r *Registry) Register(name string, s Settings) (Settings, error) {
	if name == "" {
		return Settings{}, ErrEmptyPresetName
	}
	named := s.Named(name)

	r.mu.Lock()
	r.presets[name] = named
	r.mu.Unlock()

	return named, nil
}

// Lookup returns the preset registered under name.
func (r *Registry) Lookup(name string) (Settings, error) {
	r.mu.RLock()
	s, ok := r.presets[name]
	r.mu.RUnlock()
	if !ok {
		return Settings{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownPreset)
	}

	return s, nil
}

// Names returns the registered preset names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.presets))
	for n := range r.presets {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
