// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"sort"
	"sync"

	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/xerrors"
)

// A Backend is a concrete implementation of the GL function and constant
// set. A backend that holds native resources should also implement
// io.Closer; the facade closes it when another backend replaces it.
type Backend interface {
	Source
	// Name returns the identifier the backend was registered under.
	Name() string
}

// An Extended backend exposes the native API beyond the ES 2.0 subset.
// ES2 returns its ES 2.0 equivalent functions, which the facade exposes
// undecorated before the backend's own functions and constants.
type Extended interface {
	Backend
	ES2() Source
}

// A Factory opens a backend. It is called on every selection of the
// backend's name.
type Factory func(cfg *config.Config) (Backend, error)

// A Registry maps backend names to factories.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry is the registry used by facades created without
// WithRegistry. Backend packages add themselves to it from init.
var DefaultRegistry = NewRegistry()

// Register registers a backend factory with the given name, replacing any
// previous registration.
func (r *Registry) Register(name string, f Factory) {
	if f == nil {
		panic("gl: Register factory is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Unregister removes a backend from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
}

// IsRegistered reports whether a backend with the given name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Available returns the sorted names of the registered backends.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open calls the factory registered for name.
func (r *Registry) Open(name string, cfg *config.Config) (Backend, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, xerrors.Errorf("%q (available: %v): %w", name, r.Available(), ErrUnknownBackend)
	}
	b, err := f(cfg)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, xerrors.Errorf("backend %q: factory returned no backend", name)
	}
	return b, nil
}

// Register registers a backend factory in DefaultRegistry.
func Register(name string, f Factory) { DefaultRegistry.Register(name, f) }

// Unregister removes a backend from DefaultRegistry.
func Unregister(name string) { DefaultRegistry.Unregister(name) }

// Available returns the sorted names of the backends in DefaultRegistry.
func Available() []string { return DefaultRegistry.Available() }
