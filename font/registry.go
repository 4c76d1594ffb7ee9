// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package font

import (
	"fmt"
	"sync"
)

// DefaultName is the name the built-in face is registered under.
const DefaultName = "default"

// Registry maps font handles to faces. Scene decoders resolve the font
// name carried by a text primitive against a registry.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	faces map[string]Face
}

// NewRegistry creates a registry with the built-in face registered as
// "default".
func NewRegistry() *Registry {
	return &Registry{
		faces: map[string]Face{DefaultName: Default()},
	}
}

// Register adds or replaces a face under the given name.
func (r *Registry) Register(name string, f Face) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[name] = f
}

// Lookup returns the face registered under name.
func (r *Registry) Lookup(name string) (Face, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.faces[name]
	if !ok {
		return nil, fmt.Errorf("font: unknown face %q", name)
	}
	return f, nil
}
